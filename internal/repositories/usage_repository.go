package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"captionary/internal/models/db_models"
)

type ConsumeResult struct {
	Granted        bool
	RemainingAfter int
}

// IUsageLedger tracks per-account, per-billing-period generation counts.
// TryConsume is the concurrency-correctness boundary: it must be atomic per
// (account, period) key so two simultaneous requests can never both be
// granted the last remaining unit. Any storage failure must leave the count
// unchanged.
type IUsageLedger interface {
	CurrentUsage(ctx context.Context, accountID uuid.UUID, periodKey string) (int, error)
	TryConsume(ctx context.Context, accountID uuid.UUID, periodKey string, limit int) (ConsumeResult, error)
}

type usageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) IUsageLedger {
	return &usageRepository{db: db}
}

func (r *usageRepository) CurrentUsage(ctx context.Context, accountID uuid.UUID, periodKey string) (int, error) {
	var row db_models.UsageCounter
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND period_key = ?", accountID, periodKey).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return row.Generations, nil
}

func (r *usageRepository) TryConsume(ctx context.Context, accountID uuid.UUID, periodKey string, limit int) (ConsumeResult, error) {
	var result ConsumeResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		granted, err := r.consumeExisting(tx, accountID, periodKey, limit)
		if err != nil {
			return err
		}
		if granted {
			return r.readBack(tx, accountID, periodKey, limit, true, &result)
		}

		var row db_models.UsageCounter
		err = tx.Where("account_id = ? AND period_key = ?", accountID, periodKey).First(&row).Error
		if err == nil {
			// Row exists and the guarded update refused it: quota spent.
			result = ConsumeResult{Granted: false, RemainingAfter: remaining(limit, row.Generations)}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if limit < 1 {
			result = ConsumeResult{Granted: false, RemainingAfter: 0}
			return nil
		}

		// First generation of the period: create the row lazily. A concurrent
		// request may win the insert race, in which case fall back to the
		// guarded update once more.
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&db_models.UsageCounter{
			AccountID:   accountID,
			PeriodKey:   periodKey,
			Generations: 1,
		})
		if ins.Error != nil {
			return ins.Error
		}
		if ins.RowsAffected == 1 {
			result = ConsumeResult{Granted: true, RemainingAfter: remaining(limit, 1)}
			return nil
		}

		granted, err = r.consumeExisting(tx, accountID, periodKey, limit)
		if err != nil {
			return err
		}
		return r.readBack(tx, accountID, periodKey, limit, granted, &result)
	})

	if err != nil {
		return ConsumeResult{}, err
	}
	return result, nil
}

// consumeExisting is the atomic check-and-increment: the UPDATE only fires
// while the count is still under the limit, and row-level locking serializes
// concurrent callers on the same key.
func (r *usageRepository) consumeExisting(tx *gorm.DB, accountID uuid.UUID, periodKey string, limit int) (bool, error) {
	res := tx.Model(&db_models.UsageCounter{}).
		Where("account_id = ? AND period_key = ? AND generations < ?", accountID, periodKey, limit).
		UpdateColumn("generations", gorm.Expr("generations + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *usageRepository) readBack(tx *gorm.DB, accountID uuid.UUID, periodKey string, limit int, granted bool, out *ConsumeResult) error {
	var row db_models.UsageCounter
	if err := tx.Where("account_id = ? AND period_key = ?", accountID, periodKey).First(&row).Error; err != nil {
		return err
	}
	*out = ConsumeResult{Granted: granted, RemainingAfter: remaining(limit, row.Generations)}
	return nil
}

func remaining(limit, used int) int {
	if used >= limit {
		return 0
	}
	return limit - used
}
