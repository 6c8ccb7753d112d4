package service

import (
	"context"
	"errors"
	"regexp"

	"airaware-backend/auth"
	"airaware-backend/models"
	"airaware-backend/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the datastore surface the services need for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration and login
type AuthService struct {
	userRepo UserRepository
	tokens   *auth.TokenManager
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// AuthWithUserRepository sets the user repository
func AuthWithUserRepository(repo UserRepository) AuthServiceOption {
	return func(s *AuthService) {
		s.userRepo = repo
	}
}

// AuthWithTokenManager sets the token manager
func AuthWithTokenManager(tokens *auth.TokenManager) AuthServiceOption {
	return func(s *AuthService) {
		s.tokens = tokens
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AuthResult carries a signed token plus the public user fields
type AuthResult struct {
	Token string
	User  *models.User
}

// Register validates credentials, hashes the password and creates the account
func (s *AuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	if !emailPattern.MatchString(email) {
		return nil, NewValidationError("A valid email is required")
	}
	if len(password) < 6 {
		return nil, NewValidationError("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}
