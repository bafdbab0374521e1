package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Caption is one history row: the winning variant of a completed generation
// plus a snapshot of the request that produced it.
type Caption struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	RequestID uuid.UUID `gorm:"index"`

	CaptionText  string
	Hashtags     pq.StringArray `gorm:"type:text[]"`
	AltText      string
	Tone         string
	Provider     string  `gorm:"index"`
	QualityScore float64

	// Full request/variant payloads for replay and support
	RequestSnapshot datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	VariantSnapshot datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Embedding of the media description, for similar-caption lookup
	Embedding pgvector.Vector `gorm:"type:vector(1536)"`

	Account Account `gorm:"foreignKey:AccountID"`
}
