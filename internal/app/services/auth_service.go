package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

// AuthService defines the interface for credential verification
type AuthService interface {
	// Authenticate resolves an email/password pair to the matching user.
	// An unknown email and a wrong password both return
	// apperrors.ErrInvalidCredentials; the two causes are never
	// distinguishable from the result.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo repositories.UserStore
	logger   zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.UserStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate verifies credentials against the user store
func (s *authServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("Error looking up user during authentication")
		return nil, fmt.Errorf("error authenticating user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
