// Package user implements user account use cases
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	userdomain "github.com/pantrychef/pantrychef/internal/domain/user"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	apperrors "github.com/pantrychef/pantrychef/pkg/errors"
	"go.uber.org/zap"
)

// TokenIssuer issues access tokens for authenticated users
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// UserDTO is the outward representation of a user
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult carries the token and user returned on login
type LoginResult struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

// Service implements the user use cases
type Service struct {
	users      outbound.UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     *zap.Logger
}

// NewService creates a new user service
func NewService(users outbound.UserRepository, tokens TokenIssuer, bcryptCost int, logger *zap.Logger) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new account. The email must not already be in use.
func (s *Service) Register(ctx context.Context, name, email, password string) (*UserDTO, error) {
	u, err := userdomain.NewUser(name, email, password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidationFailed, err.Error())
	}

	if _, err := s.users.FindByEmail(ctx, u.Email()); err == nil {
		return nil, apperrors.New(apperrors.CodeEmailAlreadyExists, "email already registered")
	} else if !errors.Is(err, userdomain.ErrNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to check email")
	}

	if err := s.users.Create(ctx, u); err != nil {
		// a concurrent registration can still hit the unique index
		if errors.Is(err, userdomain.ErrEmailExists) {
			return nil, apperrors.New(apperrors.CodeEmailAlreadyExists, "email already registered")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to create user")
	}

	s.logger.Info("user registered", zap.String("user_id", u.ID().String()))
	dto := toDTO(u)
	return &dto, nil
}

// Login authenticates a user and issues an access token. Unknown
// email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "invalid email or password")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to look up user")
	}

	if err := u.CheckPassword(password); err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "invalid email or password")
	}

	token, err := s.tokens.GenerateAccessToken(u.ID())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to issue token")
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID().String()))
	return &LoginResult{
		AccessToken: token,
		User:        toDTO(u),
	}, nil
}

// List returns all registered users
func (s *Service) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list users")
	}
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	return dtos, nil
}

// Delete removes an account. Users may only delete themselves; the
// deletion cascades to their recipes, tutorials and favorites.
func (s *Service) Delete(ctx context.Context, requesterID, targetID uuid.UUID) error {
	if requesterID != targetID {
		return apperrors.New(apperrors.CodeForbidden, "cannot delete another user's account")
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return apperrors.New(apperrors.CodeUserNotFound, "user not found")
		}
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to delete user")
	}
	return nil
}

func toDTO(u *userdomain.User) UserDTO {
	return UserDTO{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}
