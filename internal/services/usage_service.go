package services

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"captionary/internal/models/response_models"
	"captionary/internal/repositories"
	"captionary/pkg/utils"
)

type UsageServiceInterface interface {
	Summary(ctx context.Context, accountID uuid.UUID) (*response_models.UsageSummary, error)
}

type UsageService struct {
	ledger        repositories.IUsageLedger
	subscriptions SubscriptionServiceInterface
}

func NewUsageService(ledger repositories.IUsageLedger, subscriptions SubscriptionServiceInterface) UsageServiceInterface {
	return &UsageService{ledger: ledger, subscriptions: subscriptions}
}

func (s *UsageService) Summary(ctx context.Context, accountID uuid.UUID) (*response_models.UsageSummary, error) {
	sub, err := s.subscriptions.Current(ctx, accountID)
	if err != nil {
		return nil, err
	}

	limit, err := LimitFor(sub.Tier)
	if err != nil {
		return nil, err
	}

	periodKey := utils.CurrentPeriodKey()
	used, err := s.ledger.CurrentUsage(ctx, accountID, periodKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLedgerUnavailable, err)
	}

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}

	pct := 0.0
	if limit > 0 {
		pct = math.Round(float64(used)/float64(limit)*100) / 100
		if pct > 1 {
			pct = 1
		}
	}

	return &response_models.UsageSummary{
		PeriodKey:       periodKey,
		Plan:            string(sub.Tier),
		Used:            used,
		Limit:           limit,
		Remaining:       remaining,
		UsagePercentage: pct,
	}, nil
}
