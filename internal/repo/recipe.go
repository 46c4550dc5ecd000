package repo

import (
	"context"
	"errors"
	"time"

	"github.com/crucial707/recipe-share/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ==========================
// RecipeRepo
// ==========================
type RecipeRepo struct {
	col *mongo.Collection
}

func NewRecipeRepo(database *mongo.Database) *RecipeRepo {
	return &RecipeRepo{col: database.Collection("recipes")}
}

// ==========================
// Create Recipe
// ==========================

// Create persists a recipe owned by ownerID. The owner always comes from the
// authenticated context, never from a request body.
func (r *RecipeRepo) Create(ctx context.Context, ownerID, title string, ingredients []string, instructions string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	recipe := &models.Recipe{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		UserID:       oid,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// ==========================
// List Recipes
// ==========================

// List returns all recipes in insertion order. No pagination.
func (r *RecipeRepo) List(ctx context.Context) ([]models.Recipe, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recipes := []models.Recipe{}
	if err := cur.All(ctx, &recipes); err != nil {
		return nil, err
	}

	return recipes, nil
}

// ==========================
// Get By ID
// ==========================
func (r *RecipeRepo) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids look the same as absent ones to callers: 404, not 500.
		return nil, ErrNotFound
	}

	recipe := &models.Recipe{}

	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return recipe, nil
}
