package utils

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAICaptionClient is the "heavy" provider: complex requests (video,
// long descriptions, educational goals) are routed here.
type OpenAICaptionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICaptionClient(apiKey, model string) *OpenAICaptionClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAICaptionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICaptionClient) Name() CaptionProvider { return ProviderOpenAI }

func (c *OpenAICaptionClient) GenerateCaptions(ctx context.Context, fields CaptionFields) ([]string, error) {
	system, user := buildCaptionPrompt(fields)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   600,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return nil, &ProviderError{Provider: ProviderOpenAI, Transient: openAIErrTransient(err), Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: ProviderOpenAI, Transient: true, Err: errors.New("no response from openai")}
	}

	captions, err := parseCaptionList(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderOpenAI, Transient: true, Err: err}
	}
	return captions, nil
}

// Rate limits and server-side failures are worth retrying; everything else
// (bad request, auth) is permanent.
func openAIErrTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return true // network-level failures
}
