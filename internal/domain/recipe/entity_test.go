package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	owner := uuid.New()

	t.Run("creates recipe with owner", func(t *testing.T) {
		r, err := NewRecipe("Carbonara", "Boil pasta.\nFry guanciale.", "pasta\neggs", "https://img.example/c.jpg", owner)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Carbonara", r.Name())
		assert.Equal(t, owner, r.UserID())
		assert.Empty(t, r.Tutorials())
		assert.False(t, r.CreatedAt().IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewRecipe("", "steps", "stuff", "", owner)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("rejects empty instructions", func(t *testing.T) {
		_, err := NewRecipe("Carbonara", "  ", "stuff", "", owner)
		assert.ErrorIs(t, err, ErrInstructionsRequired)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewRecipe("Carbonara", "steps", "stuff", "", uuid.Nil)
		assert.ErrorIs(t, err, ErrOwnerRequired)
	})
}

func TestAttachTutorials(t *testing.T) {
	r, err := NewRecipe("Ramen", "Simmer broth.", "noodles", "", uuid.New())
	require.NoError(t, err)

	tutorials := []Tutorial{
		NewTutorial("Easy Ramen", "abc123def45", "https://img.example/t.jpg", "NoodleChannel"),
	}
	r.AttachTutorials(tutorials)

	require.Len(t, r.Tutorials(), 1)
	assert.Equal(t, "Easy Ramen", r.Tutorials()[0].Title())
}

func TestTutorialURL(t *testing.T) {
	tut := NewTutorial("Quick Tacos", "dQw4w9WgXcQ", "", "TacoTime")
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", tut.URL())
}
