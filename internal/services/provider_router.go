package services

import (
	"strings"

	"captionary/internal/models/request_models"
	"captionary/pkg/utils"
)

// Descriptions longer than this are considered complex enough for the heavy
// provider.
const longDescriptionThreshold = 50

// Static per-provider unit costs for analytics. They do not gate execution.
var providerUnitCosts = map[utils.CaptionProvider]float64{
	utils.ProviderOpenAI: 0.02,
	utils.ProviderGemini: 0.01,
}

// CostRouter maps a request's characteristics to a provider choice.
// Deterministic and side-effect free; re-evaluated per request.
type CostRouter struct{}

func NewCostRouter() *CostRouter {
	return &CostRouter{}
}

// SelectProvider applies the routing heuristic in priority order, first
// match wins: video, long description and educational goals go to the heavy
// provider, everything else to the light one.
func (r *CostRouter) SelectProvider(req request_models.GenerateCaptionRequest) utils.CaptionProvider {
	if req.MediaType == request_models.MediaTypeVideo {
		return utils.ProviderOpenAI
	}
	if len(req.MediaDescription) > longDescriptionThreshold {
		return utils.ProviderOpenAI
	}
	if strings.EqualFold(req.Goal, "educate") {
		return utils.ProviderOpenAI
	}
	return utils.ProviderGemini
}

func (r *CostRouter) EstimatedCost(_ request_models.GenerateCaptionRequest, provider utils.CaptionProvider) float64 {
	return providerUnitCosts[provider]
}
