package ports

import (
	"context"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// CreateRecipeInput carries all data needed to create a recipe.
// OwnerID always comes from the verified token, never from the request body.
type CreateRecipeInput struct {
	Name         string
	Image        string
	Ingredients  []string
	Instructions string
	ImageURL     string
	CookingTime  int
	Nutrition    string
	OwnerID      string
}

// RecipeService defines use-case operations for recipes and saved recipes.
type RecipeService interface {
	List(ctx context.Context) ([]*domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	Create(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error)
	Save(ctx context.Context, userID, recipeID string) ([]string, error)
	SavedIDs(ctx context.Context, userID string) ([]string, error)
	SavedRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error)
}
