package security

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/pantrychef/internal/infrastructure/config"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	auth *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	cfg := &config.Config{}
	cfg.App.Name = "pantrychef-test"
	cfg.Auth.JWTSecret = "test-secret-key-for-auth-tests"
	cfg.Auth.JWTExpiration = time.Hour
	s.auth = NewAuthService(cfg)
}

func (s *AuthServiceTestSuite) TestGenerateAndValidateToken() {
	userID := uuid.New()

	token, err := s.auth.GenerateAccessToken(userID)
	s.Require().NoError(err)
	s.Require().NotEmpty(token)

	claims, err := s.auth.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(userID.String(), claims.UserID)
	s.Equal(userID.String(), claims.Subject)
	s.Equal("pantrychef-test", claims.Issuer)
}

func (s *AuthServiceTestSuite) TestValidateMalformedToken() {
	_, err := s.auth.ValidateToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AuthServiceTestSuite) TestValidateTokenWrongSecret() {
	otherCfg := &config.Config{}
	otherCfg.Auth.JWTSecret = "a-completely-different-secret"
	otherCfg.Auth.JWTExpiration = time.Hour
	other := NewAuthService(otherCfg)

	token, err := other.GenerateAccessToken(uuid.New())
	s.Require().NoError(err)

	_, err = s.auth.ValidateToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AuthServiceTestSuite) TestValidateExpiredToken() {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret-key-for-auth-tests"
	cfg.Auth.JWTExpiration = -time.Minute
	expired := NewAuthService(cfg)

	token, err := expired.GenerateAccessToken(uuid.New())
	s.Require().NoError(err)

	_, err = s.auth.ValidateToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
