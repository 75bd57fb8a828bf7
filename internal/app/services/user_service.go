package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

// UserService defines the interface for user-related operations
type UserService interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.UserStore) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// CreateUser validates a signup payload, hashes the password and persists the
// user. If validation fails nothing is persisted and the plaintext password
// is never hashed. Storage-layer violations (email syntax, uniqueness) come
// back as the same ValidationError shape.
func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	messages := validation.ValidateNewUser(req.FirstName, req.LastName, req.EmailAddress, req.Password)
	if len(messages) > 0 {
		return nil, &apperrors.ValidationError{Messages: messages}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.EmailAddress,
		Password:  hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}
