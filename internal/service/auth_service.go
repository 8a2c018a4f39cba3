package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/navyashreebh2-create/diary-baby/internal/errors"
	"github.com/navyashreebh2-create/diary-baby/internal/model"
	"github.com/navyashreebh2-create/diary-baby/internal/repository"
)

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService owns user identity records: registration, credential
// verification and identity lookup. Password hashes never leave this layer
// in any projection the handlers expose.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Register validates the input, hashes the password and stores a new user.
// Emails are lower-cased before storage so lookups are case-insensitive.
func (s *authService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidation("Please enter a valid email address")
	}
	if len(password) < 6 {
		return nil, apperrors.NewValidation("Password must be at least 6 characters")
	}
	if name == "" {
		return nil, apperrors.NewValidation("Name is required")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// VerifyCredentials authenticates by email and password. A missing user and
// a wrong password are indistinguishable to the caller.
func (s *authService) VerifyCredentials(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// FindByID returns the identity for a previously verified user id.
func (s *authService) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
