// @title           Recipe API
// @version         1.0
// @description     Recipe sharing service: accounts, recipes, saved recipes and meal plans.
// @BasePath        /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipess/recipe-api/internal/api"
	"github.com/recipess/recipe-api/internal/api/handler"
	"github.com/recipess/recipe-api/internal/core/ports"
	"github.com/recipess/recipe-api/internal/core/service"
	mongodb "github.com/recipess/recipe-api/internal/infrastructure/db/mongo"
	redisdb "github.com/recipess/recipe-api/internal/infrastructure/db/redis"
	"github.com/recipess/recipe-api/internal/infrastructure/security"
	"github.com/recipess/recipe-api/internal/infrastructure/spoonacular"
	"github.com/recipess/recipe-api/internal/pkg/config"
	"github.com/recipess/recipe-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		// The configured logger may not exist yet.
		boot := logger.Init(logger.Options{Service: "recipe-api"})
		boot.Error().Err(err).Msg("recipe api stopped")
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred cleanups execute on any error path.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "recipe-api",
		Env:     cfg.Env,
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	users := mongodb.NewUserRepository(db)
	recipes := mongodb.NewRecipeRepository(db)
	if err := mongodb.EnsureIndexes(ctx, users, recipes); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	checks := []handler.DependencyCheck{
		{Name: "mongodb", Ping: func(ctx context.Context) error { return mongodb.Ping(ctx, db) }},
	}

	// --- Security ---
	tokens, err := security.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("token issuer: %w", err)
	}
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	// --- Meal plans (Spoonacular + Redis cache) ---
	var mealPlans ports.MealPlanService
	if cfg.Spoonacular.Enabled() {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		checks = append(checks, handler.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})

		planner := spoonacular.NewClient(spoonacular.Config{
			BaseURL: cfg.Spoonacular.BaseURL,
			APIKey:  cfg.Spoonacular.APIKey,
			Timeout: cfg.Spoonacular.Timeout,
		})
		mealPlans = service.NewMealPlanService(planner, redisdb.NewMealPlanCache(rdb), cfg.Spoonacular.CacheTTL, log)
	}

	e := api.NewRouter(api.Dependencies{
		Log:       log,
		Auth:      service.NewAuthService(users, hasher, tokens, log),
		Recipes:   service.NewRecipeService(recipes, users, log),
		MealPlans: mealPlans,
		Verifier:  tokens,
		TokenCookie: handler.TokenCookie{
			Name:   cfg.Auth.TokenCookie,
			MaxAge: cfg.Auth.TokenTTL,
			Secure: cfg.IsProduction(),
		},
		CORSOrigins:  cfg.CORSAllowOrigins,
		HealthChecks: checks,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("recipe api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
