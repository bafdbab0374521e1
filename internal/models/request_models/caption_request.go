package request_models

import "time"

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

// GenerateCaptionRequest carries the wizard selections for one generation.
// Immutable once constructed; the engine only reads it. Any binary media stays
// with the caller, only the text description travels to providers.
type GenerateCaptionRequest struct {
	Mood             string    `json:"mood" binding:"required"`
	MediaDescription string    `json:"media_description" binding:"required"`
	Goal             string    `json:"goal" binding:"required"`
	Tone             string    `json:"tone" binding:"required"`
	Platform         string    `json:"platform" binding:"required"`
	MediaType        MediaType `json:"media_type" binding:"required,oneof=photo video"`
	CreatedAt        time.Time `json:"created_at"`
}

type SimilarCaptionsRequest struct {
	Query string `json:"query" form:"q" binding:"required"`
	Limit int    `json:"limit" form:"limit"`
}
