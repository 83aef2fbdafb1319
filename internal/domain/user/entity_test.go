package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		u, err := NewUser("Alice Smith", "alice@example.com", "supersecret", bcrypt.MinCost)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Alice Smith", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.NotEqual(t, "supersecret", u.PasswordHash())
		assert.NoError(t, u.CheckPassword("supersecret"))
	})

	t.Run("normalizes email to lower case", func(t *testing.T) {
		u, err := NewUser("Alice", "Alice@Example.COM", "supersecret", bcrypt.MinCost)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("   ", "alice@example.com", "supersecret", bcrypt.MinCost)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("Alice", "not-an-email", "supersecret", bcrypt.MinCost)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("Alice", "alice@example.com", "short", bcrypt.MinCost)
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}

func TestCheckPassword(t *testing.T) {
	u, err := NewUser("Bob", "bob@example.com", "correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, u.CheckPassword("correct horse"))
	assert.Error(t, u.CheckPassword("battery staple"))
	assert.Error(t, u.CheckPassword(""))
}

func TestReconstructUser(t *testing.T) {
	id := uuid.New()
	created := time.Now().Add(-time.Hour)
	updated := time.Now()

	u := ReconstructUser(id, "Carol", "carol@example.com", "$2a$10$hash", created, updated)

	assert.Equal(t, id, u.ID())
	assert.Equal(t, "Carol", u.Name())
	assert.Equal(t, "carol@example.com", u.Email())
	assert.Equal(t, "$2a$10$hash", u.PasswordHash())
	assert.Equal(t, created, u.CreatedAt())
	assert.Equal(t, updated, u.UpdatedAt())
}
