package ports

import (
	"context"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	// Create inserts r and sets r.ID.
	Create(ctx context.Context, r *domain.Recipe) error
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	// FindByIDs returns the recipes whose ids are in ids. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Recipe, error)
}
