package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/recipess/recipe-api/internal/core/domain"
)

const recipesNS = "recipes.recipes"

func recipeBSON(id, owner primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "ingredients", Value: bson.A{"flour", "milk"}},
		{Key: "instructions", Value: "mix"},
		{Key: "cooking_time", Value: 15},
		{Key: "user_owner", Value: owner},
		{Key: "created_at", Value: int64(1714557600)},
	}
}

func TestRecipeRepository_Create(t *testing.T) {
	mt := newMockT(t)
	owner := primitive.NewObjectID()

	mt.Run("sets id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewRecipeRepository(mt.DB)

		recipe := &domain.Recipe{Name: "Pancakes", Ingredients: []string{"flour"}, Instructions: "fry", UserOwner: owner.Hex(), CreatedAt: time.Now()}
		if err := repo.Create(context.Background(), recipe); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(recipe.ID); err != nil {
			mt.Errorf("expected an object id, got %q", recipe.ID)
		}
	})

	mt.Run("owner must be an object id", func(mt *mtest.T) {
		repo := NewRecipeRepository(mt.DB)
		if err := repo.Create(context.Background(), &domain.Recipe{Name: "x", UserOwner: "user-1"}); !errors.Is(err, domain.ErrInvalidID) {
			mt.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestRecipeRepository_FindByID(t *testing.T) {
	mt := newMockT(t)
	id, owner := primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch, recipeBSON(id, owner, "Pancakes")))
		repo := NewRecipeRepository(mt.DB)

		got, err := repo.FindByID(context.Background(), id.Hex())
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Pancakes" || got.UserOwner != owner.Hex() || got.CookingTime != 15 {
			mt.Errorf("unexpected recipe: %+v", got)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch))
		repo := NewRecipeRepository(mt.DB)

		if _, err := repo.FindByID(context.Background(), id.Hex()); !errors.Is(err, domain.ErrRecipeNotFound) {
			mt.Fatalf("expected ErrRecipeNotFound, got %v", err)
		}
	})
}

func TestRecipeRepository_FindByIDs(t *testing.T) {
	mt := newMockT(t)
	a, b, owner := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	mt.Run("empty input skips the query", func(mt *mtest.T) {
		repo := NewRecipeRepository(mt.DB)
		got, err := repo.FindByIDs(context.Background(), nil)
		if err != nil || got == nil || len(got) != 0 {
			mt.Fatalf("expected empty list, got %v %v", got, err)
		}
	})

	mt.Run("returns matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch,
			recipeBSON(a, owner, "Soup"),
			recipeBSON(b, owner, "Salad"),
		))
		repo := NewRecipeRepository(mt.DB)

		got, err := repo.FindByIDs(context.Background(), []string{a.Hex(), b.Hex(), a.Hex()})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != a.Hex() || got[1].Name != "Salad" {
			mt.Fatalf("unexpected recipes: %+v", got)
		}
	})
}
