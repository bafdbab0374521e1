package services

import (
	"fmt"

	"captionary/internal/models/db_models"
	"captionary/pkg/utils"
)

// Monthly generation limits per tier. Policy data, not per-call-site
// constants.
var planGenerationLimits = map[db_models.PlanTier]int{
	db_models.TierFree:    10,
	db_models.TierPremium: 100,
	db_models.TierPro:     1000,
}

// LimitFor resolves the monthly generation limit for a tier. A tier outside
// the closed set is a configuration error and fails fast instead of silently
// resolving to a zero quota.
func LimitFor(tier db_models.PlanTier) (int, error) {
	limit, ok := planGenerationLimits[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", utils.ErrUnknownPlan, tier)
	}
	return limit, nil
}
