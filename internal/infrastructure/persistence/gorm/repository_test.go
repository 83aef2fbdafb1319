package gorm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/pantrychef/internal/domain/recipe"
	"github.com/pantrychef/pantrychef/internal/domain/user"
	persistencegorm "github.com/pantrychef/pantrychef/internal/infrastructure/persistence/gorm"
	"github.com/pantrychef/pantrychef/internal/infrastructure/persistence/sqlite"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	"github.com/pantrychef/pantrychef/test/testutils"
)

func newRepos(t *testing.T) (outbound.UserRepository, outbound.RecipeRepository) {
	t.Helper()
	db, err := sqlite.NewDatabase(":memory:", zap.NewNop())
	require.NoError(t, err)
	logger := zap.NewNop()
	return persistencegorm.NewUserRepository(db, logger), persistencegorm.NewRecipeRepository(db, logger)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		users, _ := newRepos(t)
		u := testutils.NewUser()

		require.NoError(t, users.Create(ctx, u))

		byID, err := users.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, u.Email(), byID.Email())
		assert.Equal(t, u.PasswordHash(), byID.PasswordHash())

		byEmail, err := users.FindByEmail(ctx, u.Email())
		require.NoError(t, err)
		assert.Equal(t, u.ID(), byEmail.ID())
	})

	t.Run("duplicate email hits the unique index", func(t *testing.T) {
		users, _ := newRepos(t)
		first := testutils.NewUserWithEmail("dup@example.com")
		second := testutils.NewUserWithEmail("dup@example.com")

		require.NoError(t, users.Create(ctx, first))
		err := users.Create(ctx, second)
		assert.ErrorIs(t, err, user.ErrEmailExists)

		all, err := users.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("missing user", func(t *testing.T) {
		users, _ := newRepos(t)
		_, err := users.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("delete cascades to recipes tutorials and favorites", func(t *testing.T) {
		users, recipes := newRepos(t)
		u := testutils.NewUser()
		require.NoError(t, users.Create(ctx, u))

		rec := testutils.NewRecipeWithTutorials(u.ID(), 2)
		require.NoError(t, recipes.Create(ctx, rec))
		require.NoError(t, recipes.AddFavorite(ctx, u.ID(), rec.ID()))

		require.NoError(t, users.Delete(ctx, u.ID()))

		_, err := users.FindByID(ctx, u.ID())
		assert.ErrorIs(t, err, user.ErrNotFound)

		_, err = recipes.FindByID(ctx, rec.ID())
		assert.ErrorIs(t, err, recipe.ErrNotFound)

		favs, err := recipes.FindFavorites(ctx, u.ID())
		require.NoError(t, err)
		assert.Empty(t, favs)
	})

	t.Run("delete missing user", func(t *testing.T) {
		users, _ := newRepos(t)
		err := users.Delete(ctx, testutils.NewUser().ID())
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestRecipeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create persists tutorials atomically", func(t *testing.T) {
		users, recipes := newRepos(t)
		u := testutils.NewUser()
		require.NoError(t, users.Create(ctx, u))

		rec := testutils.NewRecipeWithTutorials(u.ID(), 3)
		require.NoError(t, recipes.Create(ctx, rec))

		found, err := recipes.FindByID(ctx, rec.ID())
		require.NoError(t, err)
		assert.Equal(t, rec.Name(), found.Name())
		assert.Len(t, found.Tutorials(), 3)
	})

	t.Run("find by user returns only owned recipes", func(t *testing.T) {
		users, recipes := newRepos(t)
		owner := testutils.NewUser()
		other := testutils.NewUser()
		require.NoError(t, users.Create(ctx, owner))
		require.NoError(t, users.Create(ctx, other))

		require.NoError(t, recipes.Create(ctx, testutils.NewRecipe(owner.ID())))
		require.NoError(t, recipes.Create(ctx, testutils.NewRecipe(other.ID())))

		owned, err := recipes.FindByUserID(ctx, owner.ID())
		require.NoError(t, err)
		require.Len(t, owned, 1)
		assert.Equal(t, owner.ID(), owned[0].UserID())
	})

	t.Run("favorites round trip", func(t *testing.T) {
		users, recipes := newRepos(t)
		u := testutils.NewUser()
		require.NoError(t, users.Create(ctx, u))
		rec := testutils.NewRecipe(u.ID())
		require.NoError(t, recipes.Create(ctx, rec))

		fav, err := recipes.IsFavorite(ctx, u.ID(), rec.ID())
		require.NoError(t, err)
		assert.False(t, fav)

		require.NoError(t, recipes.AddFavorite(ctx, u.ID(), rec.ID()))

		fav, err = recipes.IsFavorite(ctx, u.ID(), rec.ID())
		require.NoError(t, err)
		assert.True(t, fav)

		favs, err := recipes.FindFavorites(ctx, u.ID())
		require.NoError(t, err)
		require.Len(t, favs, 1)
		assert.Equal(t, rec.ID(), favs[0].ID())
	})
}
