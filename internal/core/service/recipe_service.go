package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

type RecipeService struct {
	recipes ports.RecipeRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewRecipeService(recipes ports.RecipeRepository, users ports.UserRepository, logger zerolog.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, users: users, logger: logger}
}

func (s *RecipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	out, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return out, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	r, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get recipe %s: %w", id, err)
	}
	return r, nil
}

// Create stores a new recipe owned by input.OwnerID.
func (s *RecipeService) Create(ctx context.Context, input ports.CreateRecipeInput) (*domain.Recipe, error) {
	if input.OwnerID == "" {
		return nil, fmt.Errorf("create recipe: %w", domain.ErrMissingToken)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || len(input.Ingredients) == 0 || strings.TrimSpace(input.Instructions) == "" {
		return nil, fmt.Errorf("create recipe: name, ingredients and instructions are required: %w", domain.ErrInvalidInput)
	}
	if input.CookingTime < 0 {
		return nil, fmt.Errorf("create recipe: negative cooking time: %w", domain.ErrInvalidInput)
	}

	recipe := &domain.Recipe{
		Name:         name,
		Image:        input.Image,
		Ingredients:  append([]string(nil), input.Ingredients...),
		Instructions: input.Instructions,
		ImageURL:     input.ImageURL,
		CookingTime:  input.CookingTime,
		Nutrition:    input.Nutrition,
		UserOwner:    input.OwnerID,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		s.logger.Error().Err(err).Str("owner", input.OwnerID).Msg("failed to create recipe")
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	s.logger.Info().Str("recipe_id", recipe.ID).Str("owner", recipe.UserOwner).Msg("recipe created")
	return recipe, nil
}

// Save appends recipeID to the user's saved list. Saving the same recipe twice
// keeps both entries.
func (s *RecipeService) Save(ctx context.Context, userID, recipeID string) ([]string, error) {
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return nil, fmt.Errorf("save recipe: %w", err)
	}

	saved, err := s.users.AppendSavedRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("save recipe: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Str("recipe_id", recipeID).Int("saved_count", len(saved)).Msg("recipe saved")
	return saved, nil
}

func (s *RecipeService) SavedIDs(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("saved recipe ids: %w", err)
	}
	if user.SavedRecipes == nil {
		return []string{}, nil
	}
	return user.SavedRecipes, nil
}

// SavedRecipes resolves the user's saved ids into recipes. Ids whose recipe no
// longer exists are dropped.
func (s *RecipeService) SavedRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	ids, err := s.SavedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Recipe{}, nil
	}

	recipes, err := s.recipes.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("saved recipes: %w", err)
	}
	return recipes, nil
}
