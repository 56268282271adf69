// Package spoonacular implements ports.MealPlanner against the Spoonacular
// meal planner API.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.spoonacular.com"
	defaultTimeout = 10 * time.Second
	generatePath   = "/mealplanner/generate"
)

var _ ports.MealPlanner = (*Client)(nil)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type generateResponse struct {
	Meals []struct {
		ID             int    `json:"id"`
		ImageType      string `json:"imageType"`
		Title          string `json:"title"`
		ReadyInMinutes int    `json:"readyInMinutes"`
		Servings       int    `json:"servings"`
		SourceURL      string `json:"sourceUrl"`
	} `json:"meals"`
	Nutrients struct {
		Calories      float64 `json:"calories"`
		Protein       float64 `json:"protein"`
		Fat           float64 `json:"fat"`
		Carbohydrates float64 `json:"carbohydrates"`
	} `json:"nutrients"`
}

// Generate calls GET /mealplanner/generate. Transport failures and non-2xx
// answers are reported as domain.ErrUpstream.
func (c *Client) Generate(ctx context.Context, req ports.MealPlanRequest) (*domain.MealPlan, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("timeFrame", req.TimeFrame)
	q.Set("targetCalories", strconv.Itoa(req.TargetCalories))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+generatePath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build spoonacular request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: spoonacular: %v", domain.ErrUpstream, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: spoonacular returned %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode spoonacular response: %v", domain.ErrUpstream, err)
	}

	plan := &domain.MealPlan{
		TargetCalories: req.TargetCalories,
		TimeFrame:      req.TimeFrame,
		Meals:          make([]domain.Meal, 0, len(body.Meals)),
		Nutrients: domain.Nutrients{
			Calories:      body.Nutrients.Calories,
			Protein:       body.Nutrients.Protein,
			Fat:           body.Nutrients.Fat,
			Carbohydrates: body.Nutrients.Carbohydrates,
		},
	}
	for _, m := range body.Meals {
		plan.Meals = append(plan.Meals, domain.Meal{
			ID:             m.ID,
			Title:          m.Title,
			ImageType:      m.ImageType,
			ReadyInMinutes: m.ReadyInMinutes,
			Servings:       m.Servings,
			SourceURL:      m.SourceURL,
		})
	}
	return plan, nil
}

// url.Error embeds the full request URL, api key included.
func redact(err error, apiKey string) string {
	msg := err.Error()
	if apiKey == "" {
		return msg
	}
	return strings.ReplaceAll(msg, apiKey, "REDACTED")
}
