package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captionary/internal/models/db_models"
	"captionary/pkg/utils"
)

func TestLimitForKnownTiers(t *testing.T) {
	tests := []struct {
		tier  db_models.PlanTier
		limit int
	}{
		{db_models.TierFree, 10},
		{db_models.TierPremium, 100},
		{db_models.TierPro, 1000},
	}

	for _, tt := range tests {
		limit, err := LimitFor(tt.tier)
		require.NoError(t, err)
		assert.Equal(t, tt.limit, limit)
	}
}

func TestLimitForUnknownTierFailsFast(t *testing.T) {
	_, err := LimitFor(db_models.PlanTier("platinum"))
	assert.ErrorIs(t, err, utils.ErrUnknownPlan)

	_, err = LimitFor(db_models.PlanTier(""))
	assert.ErrorIs(t, err, utils.ErrUnknownPlan)
}
