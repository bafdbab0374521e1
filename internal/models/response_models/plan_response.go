package response_models

import "github.com/google/uuid"

type SubscriptionPlan struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Tier        string    `json:"tier"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       int64     `json:"price_minor"`
	Currency    string    `json:"currency"`
	Period      string    `json:"period"`
	TrialDays   int32     `json:"trial_days"`
	IsActive    bool      `json:"is_active"`
	IsPopular   bool      `json:"is_popular"`
	Features    []string  `json:"features"`

	MonthlyGenerationLimit int `json:"monthly_generation_limit"`
}

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	Amount       int64  `json:"amount"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider_name"`
}
