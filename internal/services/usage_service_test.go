package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"captionary/internal/models/db_models"
	"captionary/internal/repositories"
	"captionary/pkg/utils"
)

type fakeSubscriptionService struct {
	info SubscriptionInfo
	err  error
}

func (f *fakeSubscriptionService) Current(_ context.Context, _ uuid.UUID) (SubscriptionInfo, error) {
	return f.info, f.err
}

func TestUsageSummary(t *testing.T) {
	ledger := repositories.NewMemoryUsageLedger()
	accountID := uuid.New()
	periodKey := utils.CurrentPeriodKey()

	for i := 0; i < 3; i++ {
		res, err := ledger.TryConsume(context.Background(), accountID, periodKey, 10)
		require.NoError(t, err)
		require.True(t, res.Granted)
	}

	svc := NewUsageService(ledger, &fakeSubscriptionService{info: SubscriptionInfo{
		Tier: db_models.TierFree, Status: db_models.SubStatusActive,
	}})

	summary, err := svc.Summary(context.Background(), accountID)
	require.NoError(t, err)

	assert.Equal(t, periodKey, summary.PeriodKey)
	assert.Equal(t, "free", summary.Plan)
	assert.Equal(t, 3, summary.Used)
	assert.Equal(t, 10, summary.Limit)
	assert.Equal(t, 7, summary.Remaining)
	assert.InDelta(t, 0.3, summary.UsagePercentage, 0.001)
}

func TestUsageSummaryFreshAccount(t *testing.T) {
	svc := NewUsageService(repositories.NewMemoryUsageLedger(), &fakeSubscriptionService{info: SubscriptionInfo{
		Tier: db_models.TierPro, Status: db_models.SubStatusActive,
	}})

	summary, err := svc.Summary(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Used)
	assert.Equal(t, 1000, summary.Limit)
	assert.Equal(t, 1000, summary.Remaining)
	assert.Zero(t, summary.UsagePercentage)
}

func TestUsageSummaryUnknownTier(t *testing.T) {
	svc := NewUsageService(repositories.NewMemoryUsageLedger(), &fakeSubscriptionService{info: SubscriptionInfo{
		Tier: db_models.PlanTier("legacy"),
	}})

	_, err := svc.Summary(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrUnknownPlan)
}

func TestUsageSummarySubscriptionLookupFails(t *testing.T) {
	svc := NewUsageService(repositories.NewMemoryUsageLedger(), &fakeSubscriptionService{err: errors.New("db down")})

	_, err := svc.Summary(context.Background(), uuid.New())
	assert.Error(t, err)
}
