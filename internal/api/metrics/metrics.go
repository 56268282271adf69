// Package metrics defines the custom Prometheus metrics of the recipe API.
// HTTP request metrics come from echoprometheus; everything here is domain level.
//
// Metrics are registered with the default registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipes"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "invalid_input", "conflict", "invalid_credentials" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register/login attempts, by operation and result.",
	},
	[]string{"operation", "result"},
)

// TokenRejectionsTotal counts requests refused by the auth middleware.
// Label:
//   - reason: "missing", "malformed", "invalid_signature" or "expired"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected because of the access token.",
	},
	[]string{"reason"},
)

// ── Recipe metrics ────────────────────────────────────────────────────────────

var RecipesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created.",
	},
)

var RecipesSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_saved_total",
		Help:      "Total number of recipes saved to a user's list.",
	},
)

// ── Meal plan metrics ─────────────────────────────────────────────────────────

// MealPlanCacheTotal counts meal plan lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fetched from the provider)
var MealPlanCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mealplan_cache_total",
		Help:      "Total number of meal plan lookups, labelled by cache result (hit/miss).",
	},
	[]string{"result"},
)

// MealPlanUpstreamErrorsTotal counts failed calls to the meal plan provider.
var MealPlanUpstreamErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mealplan_upstream_errors_total",
		Help:      "Total number of meal plan requests that failed at the provider.",
	},
)
