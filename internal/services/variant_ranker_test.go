package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captionary/internal/models/request_models"
	"captionary/internal/models/response_models"
)

func rankerRequest() request_models.GenerateCaptionRequest {
	return request_models.GenerateCaptionRequest{
		Mood:             "Inspired",
		MediaDescription: "mountain trail at dawn",
		Goal:             "Inspire",
		Tone:             "Bold",
		Platform:         "instagram",
		MediaType:        request_models.MediaTypePhoto,
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	ranker := NewVariantRanker()

	candidates := []string{
		"ok",
		"Feel inspired on every climb, the summit is yours to take #motivation",
		"A decent middle caption about trails",
	}

	variants := ranker.Rank(candidates, rankerRequest())
	require.Len(t, variants, 3)

	for i := 1; i < len(variants); i++ {
		assert.GreaterOrEqual(t, variants[i-1].QualityScore, variants[i].QualityScore)
	}

	// The strongest candidate carries mood keyword, hashtag and good length
	assert.Contains(t, variants[0].Caption, "inspired")
}

func TestRankStableOnTies(t *testing.T) {
	ranker := NewVariantRanker()

	// Identical captions score identically; original order must survive
	candidates := []string{"same caption text here, forty chars long!", "same caption text here, forty chars long!"}

	first := ranker.Rank(candidates, rankerRequest())
	second := ranker.Rank(candidates, rankerRequest())

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, first[0].AltText, "A mountain trail at dawn representing inspired energy")
}

func TestRankDeterministicDerivation(t *testing.T) {
	ranker := NewVariantRanker()
	req := rankerRequest()
	candidates := []string{"caption one", "caption two", "caption three"}

	first := ranker.Rank(candidates, req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ranker.Rank(candidates, req))
	}
}

func TestDeriveHashtagsByGoal(t *testing.T) {
	ranker := NewVariantRanker()

	req := rankerRequest()
	req.Goal = "Educate"
	req.Tone = "Witty"
	req.Mood = "Confident"

	tags := ranker.deriveHashtags(req)
	assert.Equal(t, []string{"learn", "didyouknow", "growth", "witty", "confident"}, tags)

	req.Goal = "Daydream"
	tags = ranker.deriveHashtags(req)
	assert.Equal(t, []string{"content", "witty", "confident"}, tags)
}

func TestAltTextTemplatesCycle(t *testing.T) {
	ranker := NewVariantRanker()
	req := rankerRequest()

	// Scores equal so ranking keeps input order and templates stay aligned
	candidates := []string{"caption one", "caption two", "caption three"}
	variants := ranker.Rank(candidates, req)
	require.Len(t, variants, 3)

	assert.Equal(t, "A mountain trail at dawn representing inspired energy", variants[0].AltText)
	assert.Equal(t, "Visual representation of inspire through mountain trail at dawn", variants[1].AltText)
	assert.Equal(t, "Content showcasing bold approach to inspire", variants[2].AltText)
}

func TestQualityBuckets(t *testing.T) {
	assert.Equal(t, response_models.QualityExcellent, response_models.RatingForScore(0.8))
	assert.Equal(t, response_models.QualityExcellent, response_models.RatingForScore(0.95))
	assert.Equal(t, response_models.QualityGood, response_models.RatingForScore(0.6))
	assert.Equal(t, response_models.QualityGood, response_models.RatingForScore(0.79))
	assert.Equal(t, response_models.QualityFair, response_models.RatingForScore(0.59))
	assert.Equal(t, response_models.QualityFair, response_models.RatingForScore(0))
}

func TestScoreCaptionBounds(t *testing.T) {
	ranker := NewVariantRanker()
	req := rankerRequest()

	captions := []string{
		"",
		"x",
		"A perfectly sized caption with the inspired mood word and a #hashtag too!",
	}

	for _, c := range captions {
		score := ranker.scoreCaption(c, req)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
