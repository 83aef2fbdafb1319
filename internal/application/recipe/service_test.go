package recipe_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	recipeapp "github.com/pantrychef/pantrychef/internal/application/recipe"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	apperrors "github.com/pantrychef/pantrychef/pkg/errors"
	"github.com/pantrychef/pantrychef/test/testutils"
)

type fixture struct {
	svc       *recipeapp.Service
	recipes   *testutils.MemoryRecipeRepository
	users     *testutils.MemoryUserRepository
	generator *testutils.FakeGenerator
	videos    *testutils.FakeVideoSearcher
	images    *testutils.FakeImageFinder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		recipes: testutils.NewMemoryRecipeRepository(),
		users:   testutils.NewMemoryUserRepository(),
		generator: &testutils.FakeGenerator{
			Recipe: &outbound.GeneratedRecipe{
				DishName:     "Mushroom Risotto",
				Instructions: []string{"Saute mushrooms.", "Stir in rice.", "Add stock gradually."},
				Ingredients:  []string{"arborio rice", "mushrooms", "stock"},
			},
		},
		videos: &testutils.FakeVideoSearcher{
			Results: []outbound.VideoResult{
				{VideoID: "vid00000001", Title: "Risotto Basics", ThumbnailURL: "https://img.example/1.jpg", ChannelName: "ChefTube"},
				{VideoID: "vid00000002", Title: "Perfect Risotto", ThumbnailURL: "https://img.example/2.jpg", ChannelName: "HomeCook"},
			},
		},
		images: &testutils.FakeImageFinder{URL: "https://img.example/risotto.jpg"},
	}
	f.svc = recipeapp.NewService(f.recipes, f.users, f.generator, f.videos, f.images, 3, zap.NewNop())
	return f
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperrors.FromError(err).Code)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("full flow from ingredients", func(t *testing.T) {
		f := newFixture(t)

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{Ingredients: "rice, mushrooms, stock"})
		require.NoError(t, err)

		assert.Equal(t, "Mushroom Risotto", dto.Name)
		assert.NotEmpty(t, dto.Instructions)
		assert.Equal(t, userID.String(), dto.UserID)
		// supplied ingredients are persisted verbatim
		assert.Equal(t, "rice, mushrooms, stock", dto.Ingredients)
		assert.Equal(t, "https://img.example/risotto.jpg", dto.ImageURL)
		require.Len(t, dto.Tutorials, 2)
		assert.Equal(t, "https://www.youtube.com/watch?v=vid00000001", dto.Tutorials[0].URL)

		assert.Contains(t, f.generator.Prompt, "Ingredients available: rice, mushrooms, stock")
		assert.Equal(t, "Mushroom Risotto recipe tutorial", f.videos.Query)
	})

	t.Run("dish name branch uses generated ingredients", func(t *testing.T) {
		f := newFixture(t)

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Mushroom Risotto"})
		require.NoError(t, err)

		assert.Equal(t, "arborio rice\nmushrooms\nstock", dto.Ingredients)
		assert.Contains(t, f.generator.Prompt, "Provide the ingredients and cooking instructions for: Mushroom Risotto")
	})

	t.Run("dish name is kept when the model returns no ingredients", func(t *testing.T) {
		f := newFixture(t)
		f.generator.Recipe = &outbound.GeneratedRecipe{
			DishName:     "Shakshuka",
			Instructions: []string{"Simmer tomatoes.", "Crack eggs on top."},
		}

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Shakshuka"})
		require.NoError(t, err)
		assert.Equal(t, "Shakshuka", dto.Ingredients)
	})

	t.Run("whitespace ingredients count as absent", func(t *testing.T) {
		f := newFixture(t)

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{
			Ingredients: "   ",
			DishName:    "Mushroom Risotto",
		})
		require.NoError(t, err)

		assert.Contains(t, f.generator.Prompt, "Provide the ingredients and cooking instructions for: Mushroom Risotto")
		assert.Equal(t, "arborio rice\nmushrooms\nstock", dto.Ingredients)
	})

	t.Run("validation failures make no outbound call", func(t *testing.T) {
		cases := []struct {
			name  string
			input recipeapp.GenerateInput
		}{
			{"both empty", recipeapp.GenerateInput{}},
			{"both set", recipeapp.GenerateInput{Ingredients: "rice", DishName: "Risotto"}},
			{"ingredients too long", recipeapp.GenerateInput{Ingredients: strings.Repeat("x", 501)}},
			{"dish name too long", recipeapp.GenerateInput{DishName: strings.Repeat("x", 101)}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)

				_, err := f.svc.Generate(ctx, userID, tc.input)
				assertCode(t, err, apperrors.CodeValidationFailed)

				assert.Zero(t, f.generator.Calls)
				assert.Zero(t, f.videos.Calls)
				assert.Zero(t, f.images.Calls)
			})
		}
	})

	t.Run("generator failure aborts without persisting", func(t *testing.T) {
		f := newFixture(t)
		f.generator.Err = errors.New("model unavailable")

		_, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Risotto"})
		assertCode(t, err, apperrors.CodeExternalServiceError)

		recipes, err := f.recipes.FindByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, recipes)
	})

	t.Run("video search failure degrades to zero tutorials", func(t *testing.T) {
		f := newFixture(t)
		f.videos.Err = errors.New("search quota exceeded")

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Risotto"})
		require.NoError(t, err)
		assert.Empty(t, dto.Tutorials)
	})

	t.Run("image lookup failure falls back to placeholder", func(t *testing.T) {
		f := newFixture(t)
		f.images.Err = errors.New("lookup down")

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Risotto"})
		require.NoError(t, err)
		assert.Equal(t, "https://placehold.co/600x400?text=Mushroom+Risotto", dto.ImageURL)
	})

	t.Run("no image match falls back to placeholder", func(t *testing.T) {
		f := newFixture(t)
		f.images.URL = ""

		dto, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Risotto"})
		require.NoError(t, err)
		assert.Contains(t, dto.ImageURL, "placehold.co")
	})

	t.Run("persistence failure surfaces as error", func(t *testing.T) {
		f := newFixture(t)
		f.recipes.CreateErr = errors.New("disk full")

		_, err := f.svc.Generate(ctx, userID, recipeapp.GenerateInput{DishName: "Risotto"})
		assertCode(t, err, apperrors.CodeDatabaseError)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the caller's recipes", func(t *testing.T) {
		f := newFixture(t)
		owner := testutils.NewUser()
		other := testutils.NewUser()
		require.NoError(t, f.users.Create(ctx, owner))
		require.NoError(t, f.users.Create(ctx, other))

		require.NoError(t, f.recipes.Create(ctx, testutils.NewRecipe(owner.ID())))
		require.NoError(t, f.recipes.Create(ctx, testutils.NewRecipe(owner.ID())))
		require.NoError(t, f.recipes.Create(ctx, testutils.NewRecipe(other.ID())))

		recipes, err := f.svc.ListByUser(ctx, owner.ID())
		require.NoError(t, err)
		assert.Len(t, recipes, 2)
		for _, r := range recipes {
			assert.Equal(t, owner.ID().String(), r.UserID)
		}
	})

	t.Run("unknown user returns not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ListByUser(ctx, uuid.New())
		assertCode(t, err, apperrors.CodeUserNotFound)
	})
}

func TestFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("favoriting own recipe", func(t *testing.T) {
		f := newFixture(t)
		owner := testutils.NewUser()
		rec := testutils.NewRecipe(owner.ID())
		require.NoError(t, f.recipes.Create(ctx, rec))

		dto, created, err := f.svc.Favorite(ctx, owner.ID(), rec.ID())
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, rec.ID().String(), dto.ID)

		// favoriting again is a no-op
		_, created, err = f.svc.Favorite(ctx, owner.ID(), rec.ID())
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 1, f.recipes.FavoriteCount())
	})

	t.Run("cannot favorite another user's recipe", func(t *testing.T) {
		f := newFixture(t)
		owner := testutils.NewUser()
		stranger := testutils.NewUser()
		rec := testutils.NewRecipe(owner.ID())
		require.NoError(t, f.recipes.Create(ctx, rec))

		_, _, err := f.svc.Favorite(ctx, stranger.ID(), rec.ID())
		assertCode(t, err, apperrors.CodeForbidden)
		assert.Zero(t, f.recipes.FavoriteCount(), "favorites relation must not change")
	})

	t.Run("missing recipe returns not found", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.svc.Favorite(ctx, uuid.New(), uuid.New())
		assertCode(t, err, apperrors.CodeRecipeNotFound)
	})
}

func TestListFavorites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := testutils.NewUser()

	first := testutils.NewRecipe(owner.ID())
	second := testutils.NewRecipe(owner.ID())
	require.NoError(t, f.recipes.Create(ctx, first))
	require.NoError(t, f.recipes.Create(ctx, second))

	_, _, err := f.svc.Favorite(ctx, owner.ID(), first.ID())
	require.NoError(t, err)

	favs, err := f.svc.ListFavorites(ctx, owner.ID())
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, first.ID().String(), favs[0].ID)
}
