package handlers

import (
	"context"

	"github.com/crucial707/recipe-share/internal/models"
)

// UserStore is the credential store surface the auth handlers need.
// Implemented by repo.UserRepo; tests use in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, username, email, rawPassword string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, rawPassword string) bool
}

// RecipeStore is the recipe store surface the recipe handlers need.
type RecipeStore interface {
	Create(ctx context.Context, ownerID, title string, ingredients []string, instructions string) (*models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }
