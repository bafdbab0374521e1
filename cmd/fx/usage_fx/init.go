package usagefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"captionary/internal/repositories"
	"captionary/internal/services"
)

var Module = fx.Provide(
	provideUsageLedger, provideUsageService)

func provideUsageLedger(db *gorm.DB) repositories.IUsageLedger {
	return repositories.NewUsageRepository(db)
}

func provideUsageService(ledger repositories.IUsageLedger, subscriptions services.SubscriptionServiceInterface) services.UsageServiceInterface {
	return services.NewUsageService(ledger, subscriptions)
}
