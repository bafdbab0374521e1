package response_models

import "math"

// Quality bucket thresholds are policy constants, not user-configurable.
const (
	qualityExcellentFloor = 0.8
	qualityGoodFloor      = 0.6
)

type QualityRating string

const (
	QualityExcellent QualityRating = "Excellent"
	QualityGood      QualityRating = "Good"
	QualityFair      QualityRating = "Fair"
)

func RatingForScore(score float64) QualityRating {
	switch {
	case score >= qualityExcellentFloor:
		return QualityExcellent
	case score >= qualityGoodFloor:
		return QualityGood
	default:
		return QualityFair
	}
}

func PercentageForScore(score float64) int {
	return int(math.Round(score * 100))
}

// CaptionVariant is one ranked candidate. QualityPercentage and QualityRating
// are derived from QualityScore at construction and never recomputed.
type CaptionVariant struct {
	Caption           string        `json:"caption"`
	Hashtags          []string      `json:"hashtags"`
	AltText           string        `json:"alt_text"`
	QualityScore      float64       `json:"quality_score"`
	QualityPercentage int           `json:"quality_percentage"`
	QualityRating     QualityRating `json:"quality_rating"`
	Tone              string        `json:"tone"`
}

// CaptionGenerationResponse is produced once per successful generation,
// variants ordered best-first.
type CaptionGenerationResponse struct {
	Variants       []CaptionVariant `json:"variants"`
	RequestID      string           `json:"request_id"`
	ProcessingTime float64          `json:"processing_time"` // seconds
	Provider       string           `json:"provider"`
}

type CaptionHistoryEntry struct {
	ID           string   `json:"id"`
	Caption      string   `json:"caption"`
	Hashtags     []string `json:"hashtags"`
	AltText      string   `json:"alt_text"`
	Tone         string   `json:"tone"`
	Provider     string   `json:"provider"`
	QualityScore float64  `json:"quality_score"`
	CreatedAt    int64    `json:"created_at"`
}

type WizardOptions struct {
	Moods     []string `json:"moods"`
	Tones     []string `json:"tones"`
	Goals     []string `json:"goals"`
	Platforms []string `json:"platforms"`
}
