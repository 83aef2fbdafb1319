package recipe

import "errors"

var (
	// ErrNotFound is returned when a recipe cannot be found
	ErrNotFound = errors.New("recipe not found")

	// ErrNameRequired is returned when the dish name is empty
	ErrNameRequired = errors.New("recipe name is required")

	// ErrInstructionsRequired is returned when the instructions are empty
	ErrInstructionsRequired = errors.New("recipe instructions are required")

	// ErrOwnerRequired is returned when the owning user is missing
	ErrOwnerRequired = errors.New("recipe owner is required")

	// ErrNotOwned is returned when a user acts on a recipe they do not own
	ErrNotOwned = errors.New("recipe does not belong to user")
)
