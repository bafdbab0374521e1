package services

import (
	"context"
	"encoding/json"
	"log"

	"captionary/internal/models/db_models"
	"captionary/internal/models/response_models"
	"captionary/internal/repositories"
	"captionary/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error)
	GetPlanByCode(ctx context.Context, code string) (response_models.SubscriptionPlan, error)
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func (p *PlanService) ListPlans(ctx context.Context) ([]response_models.SubscriptionPlan, error) {
	plans, err := p.planRepo.GetAllActivePlans(ctx)
	if err != nil {
		log.Printf("error listing plans: %v", err)
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionPlan, 0, len(plans))
	for _, plan := range plans {
		result = append(result, toPlanResponse(plan))
	}
	return result, nil
}

func (p *PlanService) GetPlanByCode(ctx context.Context, code string) (response_models.SubscriptionPlan, error) {
	plan, err := p.planRepo.GetPlanByCode(ctx, code)
	if err != nil {
		return response_models.SubscriptionPlan{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.SubscriptionPlan{}, utils.ErrRecordNotFound
	}
	return toPlanResponse(*plan), nil
}

func toPlanResponse(plan db_models.Plan) response_models.SubscriptionPlan {
	var features []string
	if len(plan.Features) > 0 {
		_ = json.Unmarshal(plan.Features, &features)
	}

	// Unknown tiers in the catalog surface as limit 0 rather than failing
	// the listing; the generation path still rejects them.
	limit, _ := LimitFor(plan.Tier)

	return response_models.SubscriptionPlan{
		ID:          plan.ID,
		Code:        plan.Code,
		Tier:        string(plan.Tier),
		Name:        plan.Name,
		Description: plan.Description,
		Price:       plan.PriceMinor,
		Currency:    plan.Currency,
		Period:      string(plan.Period),
		TrialDays:   plan.TrialDays,
		IsActive:    plan.IsActive,
		IsPopular:   plan.IsPopular,
		Features:    features,

		MonthlyGenerationLimit: limit,
	}
}
