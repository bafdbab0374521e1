package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type CaptionProvider string

const (
	ProviderOpenAI CaptionProvider = "openai"
	ProviderGemini CaptionProvider = "gemini"
)

// CaptionFields is the provider-facing subset of a generation request.
// Binary media never travels through this path, only the text description.
type CaptionFields struct {
	Mood             string
	MediaDescription string
	Goal             string
	Tone             string
	Platform         string
}

// CaptionProviderInterface is the capability every backend provider must
// satisfy: structured wizard fields in, ordered raw caption candidates out.
type CaptionProviderInterface interface {
	Name() CaptionProvider
	GenerateCaptions(ctx context.Context, fields CaptionFields) ([]string, error)
}

// ProviderError classifies a provider failure as transient (worth retrying
// the whole submission) or permanent.
type ProviderError struct {
	Provider  CaptionProvider
	Transient bool
	Err       error
}

func (e *ProviderError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	return fmt.Sprintf("%s provider error (%s): %v", e.Provider, kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsTransientProviderError reports whether err should be treated as
// retryable. Timeouts and cancellations count as transient.
func IsTransientProviderError(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Transient
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

const captionsPerRequest = 3

const captionSystemPrompt = `You are a social media copywriter. Given a mood, a media description, a goal, a tone and a target platform, write caption candidates for the post.

Rules:
1. Match the requested tone and mood exactly
2. Keep each caption self-contained, ready to paste
3. Include 2-3 relevant hashtags inline at the end of each caption
4. Respect the platform's conventions (length, emoji density)

Output as JSON only, no other text: an array of exactly %d caption strings, best first.`

func buildCaptionPrompt(fields CaptionFields) (string, string) {
	system := fmt.Sprintf(captionSystemPrompt, captionsPerRequest)
	user := fmt.Sprintf("Mood: %s\nMedia: %s\nGoal: %s\nTone: %s\nPlatform: %s",
		fields.Mood, fields.MediaDescription, fields.Goal, fields.Tone, fields.Platform)
	return system, user
}

// cleanJSONResponse removes markdown fences and surrounding prose that LLMs
// tend to add around JSON payloads.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start != -1 && end > start {
		response = response[start : end+1]
	}

	return strings.TrimSpace(response)
}

func parseCaptionList(content string) ([]string, error) {
	content = cleanJSONResponse(content)

	var captions []string
	if err := json.Unmarshal([]byte(content), &captions); err != nil {
		return nil, fmt.Errorf("failed to parse caption list: %w, content: %s", err, content)
	}

	var out []string
	for _, c := range captions {
		if strings.TrimSpace(c) != "" {
			out = append(out, strings.TrimSpace(c))
		}
	}
	return out, nil
}

// NewCaptionProvider builds a concrete provider client by name.
func NewCaptionProvider(provider, apiKey, model string) (CaptionProviderInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICaptionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCaptionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
