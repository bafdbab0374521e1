package services

import (
	"fmt"
	"strings"

	"captionary/internal/models/request_models"
	"captionary/internal/models/response_models"
	"captionary/pkg/utils"
)

// Fixed wizard vocabularies. The generation engine only accepts selections
// from these sets.
var (
	MoodOptions     = []string{"Chill", "Grateful", "Confident", "Powerful", "Inspired"}
	ToneOptions     = []string{"Playful", "Poetic", "Bold", "Minimal", "Witty", "Authentic"}
	GoalOptions     = []string{"Inspire", "Promote", "Entertain", "Educate", "Connect"}
	PlatformOptions = []string{"instagram", "tiktok", "twitter", "linkedin", "facebook"}
)

func WizardOptionSet() response_models.WizardOptions {
	return response_models.WizardOptions{
		Moods:     MoodOptions,
		Tones:     ToneOptions,
		Goals:     GoalOptions,
		Platforms: PlatformOptions,
	}
}

func containsFold(options []string, value string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}

// ValidateWizardSelections checks a request against the fixed option sets.
// Matching is case-insensitive; the media description only needs to be
// non-empty.
func ValidateWizardSelections(req request_models.GenerateCaptionRequest) error {
	if strings.TrimSpace(req.MediaDescription) == "" {
		return fmt.Errorf("%w: media description is empty", utils.ErrInvalidInput)
	}
	if !containsFold(MoodOptions, req.Mood) {
		return fmt.Errorf("%w: mood %q", utils.ErrInvalidSelection, req.Mood)
	}
	if !containsFold(ToneOptions, req.Tone) {
		return fmt.Errorf("%w: tone %q", utils.ErrInvalidSelection, req.Tone)
	}
	if !containsFold(GoalOptions, req.Goal) {
		return fmt.Errorf("%w: goal %q", utils.ErrInvalidSelection, req.Goal)
	}
	if !containsFold(PlatformOptions, req.Platform) {
		return fmt.Errorf("%w: platform %q", utils.ErrInvalidSelection, req.Platform)
	}
	if req.MediaType != request_models.MediaTypePhoto && req.MediaType != request_models.MediaTypeVideo {
		return fmt.Errorf("%w: media type %q", utils.ErrInvalidSelection, req.MediaType)
	}
	return nil
}
