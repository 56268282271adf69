package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/recipess/recipe-api/internal/core/domain"
	"github.com/recipess/recipe-api/internal/core/ports"
)

const recipesCollection = "recipes"

var _ ports.RecipeRepository = (*RecipeRepository)(nil)

// RecipeRepository implements ports.RecipeRepository using MongoDB.
type RecipeRepository struct {
	col *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{col: db.Collection(recipesCollection)}
}

type recipeDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Image        string             `bson:"image,omitempty"`
	Ingredients  []string           `bson:"ingredients"`
	Instructions string             `bson:"instructions"`
	ImageURL     string             `bson:"image_url,omitempty"`
	CookingTime  int                `bson:"cooking_time"`
	Nutrition    string             `bson:"nutrition,omitempty"`
	UserOwner    primitive.ObjectID `bson:"user_owner"`
	CreatedAt    int64              `bson:"created_at"`
}

func toRecipeDoc(r *domain.Recipe) (*recipeDoc, error) {
	owner, err := parseID(r.UserOwner)
	if err != nil {
		return nil, err
	}
	return &recipeDoc{
		Name:         r.Name,
		Image:        r.Image,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		CookingTime:  r.CookingTime,
		Nutrition:    r.Nutrition,
		UserOwner:    owner,
		CreatedAt:    r.CreatedAt.Unix(),
	}, nil
}

func (d *recipeDoc) toDomain() *domain.Recipe {
	return &domain.Recipe{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Image:        d.Image,
		Ingredients:  d.Ingredients,
		Instructions: d.Instructions,
		ImageURL:     d.ImageURL,
		CookingTime:  d.CookingTime,
		Nutrition:    d.Nutrition,
		UserOwner:    d.UserOwner.Hex(),
		CreatedAt:    unixToTime(d.CreatedAt),
	}
}

// Create inserts r and sets its ID.
func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toRecipeDoc(recipe)
	if err != nil {
		return err
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = oid.Hex()
	}
	return nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc recipeDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns every recipe in insertion order.
func (r *RecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	return r.find(ctx, bson.M{})
}

// FindByIDs returns the recipes matching ids. Unknown ids are skipped.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Recipe, error) {
	if len(ids) == 0 {
		return []*domain.Recipe{}, nil
	}
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// EnsureIndexes creates the owner index on the recipes collection.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_owner", Value: 1}},
	})
	return err
}

func (r *RecipeRepository) find(ctx context.Context, filter bson.M) ([]*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []recipeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	out := make([]*domain.Recipe, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}
