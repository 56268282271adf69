package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recipess/recipe-api/internal/api/metrics"
	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

// HeaderCache reports whether a meal plan was served from cache.
const HeaderCache = "X-Cache"

type MealPlanHandler struct {
	service ports.MealPlanService
}

func NewMealPlanHandler(service ports.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{service: service}
}

// Generate handles GET /mealplan.
//
// @Summary      Generate a daily meal plan
// @Tags         mealplan
// @Produce      json
// @Param        targetCalories  query     int     false  "Daily calorie target (default 2000)"
// @Param        timeFrame       query     string  false  "Only \"day\" is supported"
// @Success      200             {object}  domain.MealPlan
// @Header       200             {string}  X-Cache  "HIT or MISS"
// @Failure      400             {object}  errorResponse
// @Failure      422             {object}  errorResponse
// @Failure      502             {object}  errorResponse
// @Router       /mealplan [get]
func (h *MealPlanHandler) Generate(c echo.Context) error {
	var q mealPlanQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.service.Generate(c.Request().Context(), ports.MealPlanRequest{
		TimeFrame:      q.TimeFrame,
		TargetCalories: q.TargetCalories,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			metrics.MealPlanUpstreamErrorsTotal.Inc()
		}
		return err
	}

	if res.Cached {
		metrics.MealPlanCacheTotal.WithLabelValues("hit").Inc()
		c.Response().Header().Set(HeaderCache, "HIT")
	} else {
		metrics.MealPlanCacheTotal.WithLabelValues("miss").Inc()
		c.Response().Header().Set(HeaderCache, "MISS")
	}
	return c.JSON(http.StatusOK, res.Plan)
}
