// Package outbound defines the driven-side ports of the application
package outbound

import (
	"context"

	"github.com/google/uuid"
	"github.com/pantrychef/pantrychef/internal/domain/recipe"
	"github.com/pantrychef/pantrychef/internal/domain/user"
)

// UserRepository defines the persistence interface for users
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
	// Delete removes the user together with their recipes,
	// tutorials and favorites in a single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecipeRepository defines the persistence interface for recipes
type RecipeRepository interface {
	// Create persists the recipe and its tutorials atomically
	Create(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*recipe.Recipe, error)

	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	FindFavorites(ctx context.Context, userID uuid.UUID) ([]*recipe.Recipe, error)
}
