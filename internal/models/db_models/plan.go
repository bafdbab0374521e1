package db_models

import (
	"gorm.io/datatypes"
)

// PlanTier is the closed set of entitlement tiers. Monthly generation limits
// per tier live in services.PlanPolicy, not on the row.
type PlanTier string

const (
	TierFree    PlanTier = "free"
	TierPremium PlanTier = "premium"
	TierPro     PlanTier = "pro"
)

type Plan struct {
	BaseModel
	Code            string   `gorm:"uniqueIndex"` // e.g., "premium_monthly", "pro_monthly"
	Tier            PlanTier `gorm:"type:plan_tier;index"`
	Name            string
	Description     *string
	Period          BillingPeriod `gorm:"type:billing_period"` // "month" | "year"
	PriceMinor      int64         // 999 = $9.99
	Currency        string        `gorm:"size:3"` // "USD", "VND"
	TrialDays       int32         `gorm:"default:0"`
	IsActive        bool          `gorm:"default:true"`
	IsPopular       bool          `gorm:"default:false"`
	// Display feature bullets, limits, etc.
	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
