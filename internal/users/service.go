package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when login fails, without saying why.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service owns signup, login and profile updates.
type Service struct {
	Repo       Repo
	BcryptCost int
}

// NewService constructs a Service with the default bcrypt cost.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, BcryptCost: bcrypt.DefaultCost}
}

// Signup registers a new account with a hashed password.
func (s *Service) Signup(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return User{}, errors.New("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// SaveProfile replaces the profile of an existing account.
func (s *Service) SaveProfile(ctx context.Context, email string, profile Profile) (User, error) {
	return s.Repo.UpdateProfile(ctx, normalizeEmail(email), profile)
}

func (s *Service) cost() int {
	if s.BcryptCost >= bcrypt.MinCost && s.BcryptCost <= bcrypt.MaxCost {
		return s.BcryptCost
	}
	return bcrypt.DefaultCost
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
