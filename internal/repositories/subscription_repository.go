package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"captionary/internal/models/db_models"
)

type ISubscriptionRepository interface {
	// GetCurrent returns the newest subscription that is still inside its
	// paid window, preloaded with its plan. Nil when the account has none.
	GetCurrent(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s SubscriptionRepository) GetCurrent(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {

	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ? AND status IN ? AND ends_at >= ?",
			accountID,
			[]db_models.SubscriptionStatus{db_models.SubStatusActive, db_models.SubStatusTrialing, db_models.SubStatusPastDue},
			time.Now().Unix()).
		Order("ends_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}
