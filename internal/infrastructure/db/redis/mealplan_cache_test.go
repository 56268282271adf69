package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

func TestKey(t *testing.T) {
	got := key(ports.MealPlanRequest{TimeFrame: domain.TimeFrameDay, TargetCalories: 1800})
	if got != "mealplan:day:1800" {
		t.Errorf("unexpected key %q", got)
	}
	if key(ports.MealPlanRequest{TimeFrame: "day", TargetCalories: 1801}) == got {
		t.Error("different calories must not share a key")
	}
}

// An unreachable server surfaces as an error, never as a miss.
func TestMealPlanCache_UnreachableIsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	cache := NewMealPlanCache(client)
	req := ports.MealPlanRequest{TimeFrame: "day", TargetCalories: 2000}

	plan, err := cache.Get(context.Background(), req)
	if err == nil {
		t.Fatal("expected an error from an unreachable server")
	}
	if plan != nil {
		t.Error("expected nil plan on error")
	}

	if err := cache.Set(context.Background(), req, &domain.MealPlan{}, time.Minute); err == nil {
		t.Error("expected Set to fail against an unreachable server")
	}
}

func TestConnect_FailsFast(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	if err == nil {
		t.Fatal("expected ping failure")
	}
}

func TestConfig_OptionsDefaults(t *testing.T) {
	opts := Config{Addr: "cache:6379", DB: 2}.options()
	if opts.Addr != "cache:6379" || opts.DB != 2 {
		t.Fatalf("unexpected address: %s db %d", opts.Addr, opts.DB)
	}
	if opts.PoolSize != defaultPoolSize || opts.DialTimeout != defaultTimeout || opts.ReadTimeout != defaultTimeout {
		t.Errorf("defaults not applied: pool=%d dial=%s read=%s", opts.PoolSize, opts.DialTimeout, opts.ReadTimeout)
	}
	if opts.ClientName != clientName {
		t.Errorf("client name: got %q", opts.ClientName)
	}

	opts = Config{PoolSize: 3, Timeout: time.Second, Password: "pw"}.options()
	if opts.PoolSize != 3 || opts.WriteTimeout != time.Second || opts.Password != "pw" {
		t.Errorf("overrides not applied: %+v", opts)
	}
}
