package planfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"captionary/internal/repositories"
	"captionary/internal/services"
)

var Module = fx.Provide(
	providePlanRepo, providePlanService,
	provideSubscriptionRepo, provideSubscriptionService)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(subRepo repositories.ISubscriptionRepository) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo)
}
