package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiCaptionClient is the "light" provider used for simple requests.
type GeminiCaptionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCaptionClient(apiKey, model string) (*GeminiCaptionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCaptionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCaptionClient) Name() CaptionProvider { return ProviderGemini }

func (c *GeminiCaptionClient) GenerateCaptions(ctx context.Context, fields CaptionFields) ([]string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)
	m.SetTopP(0.8)
	m.SetTopK(20)
	m.SetMaxOutputTokens(600)

	system, user := buildCaptionPrompt(fields)
	prompt := system + "\n\n" + user

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Transient: geminiErrTransient(err), Err: err}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &ProviderError{Provider: ProviderGemini, Transient: true, Err: errors.New("no content generated by Gemini")}
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	captions, err := parseCaptionList(content)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Transient: true, Err: err}
	}
	return captions, nil
}

func geminiErrTransient(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return true
}

func (c *GeminiCaptionClient) Close() error {
	return c.client.Close()
}
