package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"captionary/internal/models/request_models"
	"captionary/pkg/utils"
)

func wizardRequest() request_models.GenerateCaptionRequest {
	return request_models.GenerateCaptionRequest{
		Mood:             "Grateful",
		MediaDescription: "coffee on a rainy window sill",
		Goal:             "Connect",
		Tone:             "Authentic",
		Platform:         "tiktok",
		MediaType:        request_models.MediaTypePhoto,
	}
}

func TestValidateWizardSelectionsAccepts(t *testing.T) {
	assert.NoError(t, ValidateWizardSelections(wizardRequest()))

	// Matching is case-insensitive
	req := wizardRequest()
	req.Mood = "grateful"
	req.Platform = "TikTok"
	assert.NoError(t, ValidateWizardSelections(req))
}

func TestValidateWizardSelectionsRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*request_models.GenerateCaptionRequest)
		want   error
	}{
		{"empty description", func(r *request_models.GenerateCaptionRequest) { r.MediaDescription = "   " }, utils.ErrInvalidInput},
		{"unknown mood", func(r *request_models.GenerateCaptionRequest) { r.Mood = "Gloomy" }, utils.ErrInvalidSelection},
		{"unknown tone", func(r *request_models.GenerateCaptionRequest) { r.Tone = "Sarcastic" }, utils.ErrInvalidSelection},
		{"unknown goal", func(r *request_models.GenerateCaptionRequest) { r.Goal = "Dominate" }, utils.ErrInvalidSelection},
		{"unknown platform", func(r *request_models.GenerateCaptionRequest) { r.Platform = "myspace" }, utils.ErrInvalidSelection},
		{"unknown media type", func(r *request_models.GenerateCaptionRequest) { r.MediaType = "gif" }, utils.ErrInvalidSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := wizardRequest()
			tt.mutate(&req)
			assert.ErrorIs(t, ValidateWizardSelections(req), tt.want)
		})
	}
}

func TestWizardOptionSetComplete(t *testing.T) {
	opts := WizardOptionSet()
	assert.Len(t, opts.Moods, 5)
	assert.Len(t, opts.Tones, 6)
	assert.Len(t, opts.Goals, 5)
	assert.Len(t, opts.Platforms, 5)
}
