package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

var _ ports.MealPlanCache = (*MealPlanCache)(nil)

// MealPlanCache stores generated meal plans as JSON.
// Key format: mealplan:<time_frame>:<target_calories>
type MealPlanCache struct {
	client *redis.Client
}

// NewMealPlanCache creates a MealPlanCache wrapping the given Redis client.
func NewMealPlanCache(client *redis.Client) *MealPlanCache {
	return &MealPlanCache{client: client}
}

// Get returns the cached plan for req, or (nil, nil) on a miss.
func (c *MealPlanCache) Get(ctx context.Context, req ports.MealPlanRequest) (*domain.MealPlan, error) {
	raw, err := c.client.Get(ctx, key(req)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mealplan cache get: %w", err)
	}

	var plan domain.MealPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("mealplan cache decode: %w", err)
	}
	return &plan, nil
}

// Set stores plan under req's key for ttl.
func (c *MealPlanCache) Set(ctx context.Context, req ports.MealPlanRequest, plan *domain.MealPlan, ttl time.Duration) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("mealplan cache encode: %w", err)
	}
	return c.client.Set(ctx, key(req), raw, ttl).Err()
}

func key(req ports.MealPlanRequest) string {
	return fmt.Sprintf("mealplan:%s:%d", req.TimeFrame, req.TargetCalories)
}
