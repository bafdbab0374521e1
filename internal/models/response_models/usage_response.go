package response_models

type UsageSummary struct {
	PeriodKey       string  `json:"period_key"` // "YYYY-MM"
	Plan            string  `json:"plan"`
	Used            int     `json:"used"`
	Limit           int     `json:"limit"`
	Remaining       int     `json:"remaining"`
	UsagePercentage float64 `json:"usage_percentage"` // 0..1
}
