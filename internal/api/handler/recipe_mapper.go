package handler

import (
	"time"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateRecipeInput(req createRecipeRequest, ownerID string) ports.CreateRecipeInput {
	return ports.CreateRecipeInput{
		Name:         req.Name,
		Image:        req.Image,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		CookingTime:  req.CookingTime,
		Nutrition:    req.Nutrition,
		OwnerID:      ownerID,
	}
}

// --- Domain → Response ---

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	resp := recipeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Image:        r.Image,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		CookingTime:  r.CookingTime,
		Nutrition:    r.Nutrition,
		UserOwner:    r.UserOwner,
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func toRecipeResponses(rs []*domain.Recipe) []recipeResponse {
	out := make([]recipeResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toRecipeResponse(r))
	}
	return out
}
