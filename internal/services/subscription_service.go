package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"captionary/internal/models/db_models"
	"captionary/internal/repositories"
	"captionary/pkg/utils"
)

// SubscriptionInfo is the resolved entitlement view the engine consumes:
// tier plus status, read-only.
type SubscriptionInfo struct {
	Tier     db_models.PlanTier
	Status   db_models.SubscriptionStatus
	RenewsAt int64
}

type SubscriptionServiceInterface interface {
	Current(ctx context.Context, accountID uuid.UUID) (SubscriptionInfo, error)
}

type SubscriptionService struct {
	subscriptionRepo repositories.ISubscriptionRepository
}

func NewSubscriptionService(subscriptionRepo repositories.ISubscriptionRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
	}
}

// Current resolves the account's entitlement. Accounts without a live
// subscription row are on the free tier.
func (s *SubscriptionService) Current(ctx context.Context, accountID uuid.UUID) (SubscriptionInfo, error) {

	sub, err := s.subscriptionRepo.GetCurrent(ctx, accountID)
	if err != nil {
		log.Printf("subscription lookup failed for account %s: %v", accountID, err)
		return SubscriptionInfo{}, utils.ErrDatabaseError
	}

	if sub == nil {
		return SubscriptionInfo{
			Tier:   db_models.TierFree,
			Status: db_models.SubStatusActive,
		}, nil
	}

	return SubscriptionInfo{
		Tier:     sub.Plan.Tier,
		Status:   sub.Status,
		RenewsAt: sub.EndsAt,
	}, nil
}
