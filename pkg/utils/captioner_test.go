package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain array untouched",
			input: `["a", "b"]`,
			want:  `["a", "b"]`,
		},
		{
			name:  "markdown fences stripped",
			input: "```json\n[\"a\", \"b\"]\n```",
			want:  `["a", "b"]`,
		},
		{
			name:  "surrounding prose trimmed to array",
			input: `Here are your captions: ["a", "b"] hope you like them`,
			want:  `["a", "b"]`,
		},
		{
			name:  "uppercase fence",
			input: "```JSON\n[\"x\"]\n```",
			want:  `["x"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONResponse(tt.input))
		})
	}
}

func TestParseCaptionList(t *testing.T) {
	captions, err := parseCaptionList("```json\n[\"first\", \"  second  \", \"\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, captions)

	_, err = parseCaptionList("not json at all")
	assert.Error(t, err)
}

func TestIsTransientProviderError(t *testing.T) {
	transient := &ProviderError{Provider: ProviderOpenAI, Transient: true, Err: errors.New("429")}
	permanent := &ProviderError{Provider: ProviderOpenAI, Err: errors.New("bad key")}

	assert.True(t, IsTransientProviderError(transient))
	assert.False(t, IsTransientProviderError(permanent))

	// Wrapping preserves classification
	assert.True(t, IsTransientProviderError(errors.Join(errors.New("outer"), transient)))

	assert.True(t, IsTransientProviderError(context.DeadlineExceeded))
	assert.True(t, IsTransientProviderError(context.Canceled))
	assert.False(t, IsTransientProviderError(errors.New("plain")))
}

func TestNewCaptionProvider(t *testing.T) {
	openAI, err := NewCaptionProvider("openai", "key", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, openAI.Name())

	gemini, err := NewCaptionProvider("GEMINI", "key", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, gemini.Name())

	_, err = NewCaptionProvider("claude", "key", "")
	assert.Error(t, err)
}
