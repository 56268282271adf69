package ports

import (
	"context"

	"github.com/recipess/recipe-api/internal/core/domain"
)

// UserRepository persists credential records.
type UserRepository interface {
	// Create inserts a new user and returns it with its generated ID.
	// A taken username yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AppendSavedRecipe pushes recipeID onto the user's saved list and returns the
	// list as stored after the write.
	AppendSavedRecipe(ctx context.Context, userID, recipeID string) ([]string, error)
}
