// Package testutils provides factories and fakes for tests
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/pantrychef/pantrychef/internal/domain/recipe"
	"github.com/pantrychef/pantrychef/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext password used by user factories
const DefaultPassword = "testpassword123"

// NewUser builds a valid user with fake data
func NewUser() *user.User {
	u, err := user.NewUser(
		gofakeit.Name(),
		gofakeit.Email(),
		DefaultPassword,
		bcrypt.MinCost,
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid user: %v", err))
	}
	return u
}

// NewUserWithEmail builds a valid user with a fixed email
func NewUserWithEmail(email string) *user.User {
	u, err := user.NewUser(gofakeit.Name(), email, DefaultPassword, bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid user: %v", err))
	}
	return u
}

// NewRecipe builds a valid recipe owned by the given user
func NewRecipe(ownerID uuid.UUID) *recipe.Recipe {
	r, err := recipe.NewRecipe(
		gofakeit.Dinner(),
		"Step 1: prep.\nStep 2: cook.",
		"salt\npepper\nolive oil",
		gofakeit.URL(),
		ownerID,
	)
	if err != nil {
		panic(fmt.Sprintf("factory produced invalid recipe: %v", err))
	}
	return r
}

// NewRecipeWithTutorials builds a recipe carrying n tutorials
func NewRecipeWithTutorials(ownerID uuid.UUID, n int) *recipe.Recipe {
	r := NewRecipe(ownerID)
	tutorials := make([]recipe.Tutorial, 0, n)
	for i := 0; i < n; i++ {
		tutorials = append(tutorials, recipe.NewTutorial(
			gofakeit.Sentence(4),
			gofakeit.LetterN(11),
			gofakeit.URL(),
			gofakeit.Username(),
		))
	}
	r.AttachTutorials(tutorials)
	return r
}

// ReconstructedUser builds a user as it would come back from storage
func ReconstructedUser(id uuid.UUID, email, password string) *user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	now := time.Now()
	return user.ReconstructUser(id, gofakeit.Name(), email, string(hash), now, now)
}
