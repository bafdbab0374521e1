package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"captionary/internal/models/db_models"
)

type ICaptionRepository interface {
	Save(ctx context.Context, caption *db_models.Caption) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.Caption, error)
	FindSimilar(ctx context.Context, accountID uuid.UUID, embedding pgvector.Vector, limit int) ([]db_models.Caption, error)
}

type CaptionRepository struct {
	db *gorm.DB
}

func NewCaptionRepository(db *gorm.DB) ICaptionRepository {
	return &CaptionRepository{db: db}
}

func (c CaptionRepository) Save(ctx context.Context, caption *db_models.Caption) error {
	return c.db.WithContext(ctx).Create(caption).Error
}

func (c CaptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.Caption, error) {

	var captions []db_models.Caption
	err := c.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&captions).Error

	if err != nil {
		return nil, err
	}

	return captions, nil
}

func (c CaptionRepository) FindSimilar(ctx context.Context, accountID uuid.UUID, embedding pgvector.Vector, limit int) ([]db_models.Caption, error) {

	vecStr := embedding.String()

	query := `
        SELECT *
        FROM captions
        WHERE account_id = $1 AND deleted_at IS NULL
        ORDER BY embedding <=> $2  -- Cosine distance (closer to 0 is better)
        LIMIT $3
    `

	var captions []db_models.Caption
	err := c.db.WithContext(ctx).Raw(query, accountID, vecStr, limit).Scan(&captions).Error

	if err != nil {
		return nil, err
	}

	return captions, nil
}
