package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

const sampleResponse = `{
  "meals": [
    {"id": 655219, "imageType": "jpg", "title": "Peanut Butter Oatmeal", "readyInMinutes": 45, "servings": 1, "sourceUrl": "https://example.com/a"},
    {"id": 649931, "imageType": "jpg", "title": "Lentil Salad", "readyInMinutes": 20, "servings": 2, "sourceUrl": "https://example.com/b"},
    {"id": 715594, "imageType": "png", "title": "Chicken Soup", "readyInMinutes": 30, "servings": 4, "sourceUrl": "https://example.com/c"}
  ],
  "nutrients": {"calories": 1998.4, "protein": 90.1, "fat": 70.2, "carbohydrates": 250.3}
}`

func TestClient_Generate(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mealplanner/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"apiKey":         q.Get("apiKey"),
			"timeFrame":      q.Get("timeFrame"),
			"targetCalories": q.Get("targetCalories"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "k3y"})
	plan, err := c.Generate(context.Background(), ports.MealPlanRequest{TimeFrame: "day", TargetCalories: 2000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["apiKey"] != "k3y" || gotQuery["timeFrame"] != "day" || gotQuery["targetCalories"] != "2000" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
	if len(plan.Meals) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(plan.Meals))
	}
	if plan.Meals[0].Title != "Peanut Butter Oatmeal" || plan.Meals[0].ReadyInMinutes != 45 {
		t.Errorf("unexpected first meal: %+v", plan.Meals[0])
	}
	if plan.Nutrients.Calories != 1998.4 || plan.TargetCalories != 2000 {
		t.Errorf("unexpected nutrients: %+v", plan.Nutrients)
	}
}

func TestClient_Non2xxIsUpstreamError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", status)
		}))

		c := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
		_, err := c.Generate(context.Background(), ports.MealPlanRequest{TimeFrame: "day", TargetCalories: 2000})
		if !errors.Is(err, domain.ErrUpstream) {
			t.Errorf("status %d: expected ErrUpstream, got %v", status, err)
		}
		srv.Close()
	}
}

func TestClient_BadBodyIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	if _, err := c.Generate(context.Background(), ports.MealPlanRequest{TimeFrame: "day", TargetCalories: 1500}); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClient_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "super-secret", Timeout: 20 * time.Millisecond})
	_, err := c.Generate(context.Background(), ports.MealPlanRequest{TimeFrame: "day", TargetCalories: 1500})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if strings.Contains(err.Error(), "super-secret") {
		t.Errorf("api key leaked into error: %v", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("expected default base url, got %q", c.baseURL)
	}
	if c.http.Timeout != defaultTimeout {
		t.Errorf("expected default timeout, got %v", c.http.Timeout)
	}
}
