package user

import "errors"

var (
	// ErrNotFound is returned when a user cannot be found
	ErrNotFound = errors.New("user not found")

	// ErrEmailExists is returned when the email is already registered
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned for unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNameRequired is returned when the name is empty
	ErrNameRequired = errors.New("name is required")

	// ErrNameTooLong is returned when the name exceeds 100 characters
	ErrNameTooLong = errors.New("name must be at most 100 characters")

	// ErrEmailRequired is returned when the email is empty
	ErrEmailRequired = errors.New("email is required")

	// ErrInvalidEmail is returned when the email format is invalid
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort is returned when the password is under 8 characters
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrPasswordHashing is returned when the password cannot be hashed
	ErrPasswordHashing = errors.New("failed to hash password")
)
