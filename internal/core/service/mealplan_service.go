package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

const defaultMealPlanTTL = time.Hour

type MealPlanService struct {
	planner ports.MealPlanner
	cache   ports.MealPlanCache
	ttl     time.Duration
	log     zerolog.Logger
}

// NewMealPlanService returns a MealPlanService that consults cache before
// planner. cache may be nil.
func NewMealPlanService(planner ports.MealPlanner, cache ports.MealPlanCache, ttl time.Duration, log zerolog.Logger) *MealPlanService {
	if ttl <= 0 {
		ttl = defaultMealPlanTTL
	}
	return &MealPlanService{planner: planner, cache: cache, ttl: ttl, log: log}
}

// Generate returns a plan for req, normalising defaults first. Cache failures
// are logged and never fail the request.
func (s *MealPlanService) Generate(ctx context.Context, req ports.MealPlanRequest) (*ports.MealPlanResult, error) {
	if req.TimeFrame == "" {
		req.TimeFrame = domain.TimeFrameDay
	}
	if req.TargetCalories == 0 {
		req.TargetCalories = domain.DefaultTargetCalories
	}
	if req.TimeFrame != domain.TimeFrameDay {
		return nil, fmt.Errorf("meal plan: unsupported time frame %q: %w", req.TimeFrame, domain.ErrInvalidInput)
	}
	if req.TargetCalories < 0 || req.TargetCalories > domain.MaxTargetCalories {
		return nil, fmt.Errorf("meal plan: target calories out of range: %w", domain.ErrInvalidInput)
	}

	// 1. Cache lookup.
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, req)
		if err != nil {
			s.log.Warn().Err(err).Int("calories", req.TargetCalories).Msg("meal plan cache read failed, calling provider")
		} else if cached != nil {
			return &ports.MealPlanResult{Plan: cached, Cached: true}, nil
		}
	}

	// 2. Provider.
	plan, err := s.planner.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("meal plan: %w", err)
	}
	plan.TargetCalories = req.TargetCalories
	plan.TimeFrame = req.TimeFrame

	// 3. Populate cache (non-fatal).
	if s.cache != nil {
		if err := s.cache.Set(ctx, req, plan, s.ttl); err != nil {
			s.log.Warn().Err(err).Int("calories", req.TargetCalories).Msg("failed to cache meal plan")
		}
	}

	s.log.Debug().Int("calories", req.TargetCalories).Int("meals", len(plan.Meals)).Msg("meal plan generated")
	return &ports.MealPlanResult{Plan: plan}, nil
}
