package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/recipess/recipe-api/docs"
	"github.com/recipess/recipe-api/internal/api/handler"
	"github.com/recipess/recipe-api/internal/api/middleware"
	"github.com/recipess/recipe-api/internal/core/ports"
)

// Dependencies is everything NewRouter wires into the HTTP layer.
type Dependencies struct {
	Log       zerolog.Logger
	Auth      ports.AuthService
	Recipes   ports.RecipeService
	MealPlans ports.MealPlanService // nil leaves /mealplan unregistered
	Verifier  ports.TokenVerifier

	TokenCookie  handler.TokenCookie
	CORSOrigins  []string
	HealthChecks []handler.DependencyCheck

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(corsConfig(deps.CORSOrigins)))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "recipes",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.TokenCookie)
	recipeHandler := handler.NewRecipeHandler(deps.Recipes)
	requireAuth := middleware.Auth(deps.Verifier, deps.TokenCookie.Name)
	ownsUser := middleware.Owner("userId")

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Recipe routes ---
	recipes := e.Group("/recipes")
	recipes.GET("", recipeHandler.List)
	recipes.POST("", recipeHandler.Create, requireAuth)
	recipes.PUT("", recipeHandler.Save, requireAuth)
	recipes.GET("/:recipeId", recipeHandler.Get)
	recipes.GET("/savedRecipes/ids/:userId", recipeHandler.SavedIDs, requireAuth, ownsUser)
	recipes.GET("/savedRecipes/:userId", recipeHandler.SavedRecipes, requireAuth, ownsUser)

	// --- Meal planning ---
	if deps.MealPlans != nil {
		e.GET("/mealplan", handler.NewMealPlanHandler(deps.MealPlans).Generate)
	} else {
		deps.Log.Warn().Msg("meal plan provider not configured, /mealplan disabled")
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func corsConfig(origins []string) echomiddleware.CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg := echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}
	// Credentialed requests need explicit origins.
	for _, o := range origins {
		if o == "*" {
			return cfg
		}
	}
	cfg.AllowCredentials = true
	return cfg
}
