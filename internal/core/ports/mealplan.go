package ports

import (
	"context"
	"time"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// MealPlanRequest is the DTO passed from the transport layer to MealPlanService.
type MealPlanRequest struct {
	TimeFrame      string
	TargetCalories int
}

// MealPlanResult wraps a plan with where it came from.
type MealPlanResult struct {
	Plan   *domain.MealPlan
	Cached bool
}

// MealPlanner generates meal plans from an external provider.
type MealPlanner interface {
	Generate(ctx context.Context, req MealPlanRequest) (*domain.MealPlan, error)
}

// MealPlanCache stores generated plans. A miss returns (nil, nil).
type MealPlanCache interface {
	Get(ctx context.Context, req MealPlanRequest) (*domain.MealPlan, error)
	Set(ctx context.Context, req MealPlanRequest, plan *domain.MealPlan, ttl time.Duration) error
}

type MealPlanService interface {
	Generate(ctx context.Context, req MealPlanRequest) (*MealPlanResult, error)
}
