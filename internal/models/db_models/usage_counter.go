package db_models

import (
	"github.com/google/uuid"
)

// UsageCounter tracks generations per account per billing period.
// Rows are created lazily on first use and only ever incremented; a new
// billing period means a new row, never a reset of the old one.
type UsageCounter struct {
	AccountID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PeriodKey   string    `gorm:"size:7;primaryKey"` // "YYYY-MM"
	Generations int       `gorm:"not null;default:0"`
	CreatedAt   int64     `gorm:"autoCreateTime"`
	UpdatedAt   int64     `gorm:"autoUpdateTime"`
}
