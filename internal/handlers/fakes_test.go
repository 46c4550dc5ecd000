package handlers

import (
	"context"
	"strings"

	"github.com/crucial707/recipe-share/internal/models"
	"github.com/crucial707/recipe-share/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserStore is an in-memory UserStore. Passwords are kept raw in the
// hash field; VerifyPassword compares directly.
type fakeUserStore struct {
	byEmail map[string]*models.User
	// createErr forces Create to fail with a store error.
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, username, email, rawPassword string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := f.byEmail[email]; ok {
		return nil, repo.ErrDuplicateEmail
	}
	u := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: rawPassword,
	}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserStore) VerifyPassword(user *models.User, rawPassword string) bool {
	return user.PasswordHash == rawPassword
}

// fakeRecipeStore is an in-memory RecipeStore preserving insertion order.
type fakeRecipeStore struct {
	recipes   []models.Recipe
	createErr error
	listErr   error
}

func (f *fakeRecipeStore) Create(_ context.Context, ownerID, title string, ingredients []string, instructions string) (*models.Recipe, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, repo.ErrNotFound
	}
	recipe := models.Recipe{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		UserID:       oid,
	}
	f.recipes = append(f.recipes, recipe)
	return &recipe, nil
}

func (f *fakeRecipeStore) List(_ context.Context) ([]models.Recipe, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Recipe{}
	out = append(out, f.recipes...)
	return out, nil
}

func (f *fakeRecipeStore) GetByID(_ context.Context, id string) (*models.Recipe, error) {
	for i := range f.recipes {
		if f.recipes[i].ID.Hex() == id {
			return &f.recipes[i], nil
		}
	}
	return nil, repo.ErrNotFound
}
