package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"captionary/internal/models/request_models"
	"captionary/pkg/utils"
)

func TestSelectProvider(t *testing.T) {
	router := NewCostRouter()

	tests := []struct {
		name string
		req  request_models.GenerateCaptionRequest
		want utils.CaptionProvider
	}{
		{
			name: "video goes to heavy provider",
			req: request_models.GenerateCaptionRequest{
				MediaType:        request_models.MediaTypeVideo,
				MediaDescription: "short",
				Goal:             "Inspire",
			},
			want: utils.ProviderOpenAI,
		},
		{
			name: "long description goes to heavy provider",
			req: request_models.GenerateCaptionRequest{
				MediaType:        request_models.MediaTypePhoto,
				MediaDescription: strings.Repeat("x", 51),
				Goal:             "Inspire",
			},
			want: utils.ProviderOpenAI,
		},
		{
			name: "description at threshold stays on light provider",
			req: request_models.GenerateCaptionRequest{
				MediaType:        request_models.MediaTypePhoto,
				MediaDescription: strings.Repeat("x", 50),
				Goal:             "Inspire",
			},
			want: utils.ProviderGemini,
		},
		{
			name: "educational goal goes to heavy provider",
			req: request_models.GenerateCaptionRequest{
				MediaType:        request_models.MediaTypePhoto,
				MediaDescription: "short",
				Goal:             "Educate",
			},
			want: utils.ProviderOpenAI,
		},
		{
			name: "goal matching is case-insensitive",
			req: request_models.GenerateCaptionRequest{
				MediaType:        request_models.MediaTypePhoto,
				MediaDescription: "short",
				Goal:             "educate",
			},
			want: utils.ProviderOpenAI,
		},
		{
			name: "default is light provider",
			req: request_models.GenerateCaptionRequest{
				MediaType:        request_models.MediaTypePhoto,
				MediaDescription: "short",
				Goal:             "Entertain",
			},
			want: utils.ProviderGemini,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.SelectProvider(tt.req))
		})
	}
}

func TestSelectProviderDeterministic(t *testing.T) {
	router := NewCostRouter()
	req := request_models.GenerateCaptionRequest{
		MediaType:        request_models.MediaTypePhoto,
		MediaDescription: "a quiet morning",
		Goal:             "Connect",
	}

	first := router.SelectProvider(req)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, router.SelectProvider(req))
	}
}

func TestEstimatedCost(t *testing.T) {
	router := NewCostRouter()
	req := request_models.GenerateCaptionRequest{}

	assert.Equal(t, 0.02, router.EstimatedCost(req, utils.ProviderOpenAI))
	assert.Equal(t, 0.01, router.EstimatedCost(req, utils.ProviderGemini))
}
