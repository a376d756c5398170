// Package service provides the business logic for authentication,
// categories, and transactions, delegating persistence to repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"duitku/internal/models"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// UserExists returns true if a user with the given username exists.
	UserExists(ctx context.Context, username string) (bool, error)
	// CreateUser stores a new user record and returns its id.
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	// GetUserByUsername fetches a user by username.
	// Returns models.ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService implements registration and login on top of a UserRepository.
// Passwords are bcrypt-hashed before storage; plaintext is never persisted.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates a new user with a hashed password.
// Returns models.ErrUsernameTaken if the username is already in use.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.repo.CreateUser(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies a username/password pair and returns the matching user.
// Returns models.ErrInvalidCredentials for both an unknown username and a
// wrong password, so callers cannot distinguish the two.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}
