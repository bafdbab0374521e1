package services

import (
	"sort"
	"strings"

	"captionary/internal/models/request_models"
	"captionary/internal/models/response_models"
)

// Hashtag families keyed by goal, matched case-insensitively.
var goalHashtags = map[string][]string{
	"inspire":   {"motivation", "success", "inspire"},
	"promote":   {"promo", "newdrop", "checkitout"},
	"entertain": {"fun", "goodvibes", "entertainment"},
	"educate":   {"learn", "didyouknow", "growth"},
	"connect":   {"community", "together", "connect"},
}

var altTextTemplates = []func(req request_models.GenerateCaptionRequest) string{
	func(req request_models.GenerateCaptionRequest) string {
		return "A " + req.MediaDescription + " representing " + strings.ToLower(req.Mood) + " energy"
	},
	func(req request_models.GenerateCaptionRequest) string {
		return "Visual representation of " + strings.ToLower(req.Goal) + " through " + req.MediaDescription
	},
	func(req request_models.GenerateCaptionRequest) string {
		return "Content showcasing " + strings.ToLower(req.Tone) + " approach to " + strings.ToLower(req.Goal)
	},
}

// VariantRanker scores and orders raw caption candidates. All derivation is
// deterministic: same candidates and request always produce the same
// variants in the same order.
type VariantRanker struct{}

func NewVariantRanker() *VariantRanker {
	return &VariantRanker{}
}

// Rank builds a CaptionVariant per candidate, scores them and sorts by
// quality descending. Ties keep the original candidate order, so the
// first-generated candidate wins.
func (r *VariantRanker) Rank(candidates []string, req request_models.GenerateCaptionRequest) []response_models.CaptionVariant {
	variants := make([]response_models.CaptionVariant, 0, len(candidates))

	for i, candidate := range candidates {
		score := r.scoreCaption(candidate, req)
		variants = append(variants, response_models.CaptionVariant{
			Caption:           candidate,
			Hashtags:          r.deriveHashtags(req),
			AltText:           altTextTemplates[i%len(altTextTemplates)](req),
			QualityScore:      score,
			QualityPercentage: response_models.PercentageForScore(score),
			QualityRating:     response_models.RatingForScore(score),
			Tone:              req.Tone,
		})
	}

	sort.SliceStable(variants, func(a, b int) bool {
		return variants[a].QualityScore > variants[b].QualityScore
	})

	return variants
}

func (r *VariantRanker) deriveHashtags(req request_models.GenerateCaptionRequest) []string {
	tags, ok := goalHashtags[strings.ToLower(req.Goal)]
	if !ok {
		tags = []string{"content"}
	}

	out := make([]string, 0, len(tags)+2)
	out = append(out, tags...)
	out = append(out, strings.ToLower(req.Tone), strings.ToLower(req.Mood))
	return out
}

func (r *VariantRanker) scoreCaption(caption string, req request_models.GenerateCaptionRequest) float64 {
	score := 0.5
	lower := strings.ToLower(caption)

	// Length fit: long enough to carry a message, short enough for a feed
	n := len(caption)
	switch {
	case n >= 40 && n <= 220:
		score += 0.2
	case n < 20:
		score -= 0.1
	}

	if strings.Contains(caption, "#") {
		score += 0.1
	}

	if strings.Contains(lower, strings.ToLower(req.Mood)) || strings.Contains(lower, strings.ToLower(req.Goal)) {
		score += 0.1
	}

	if strings.HasSuffix(strings.TrimSpace(caption), "!") {
		score += 0.05
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}
