package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrExists is returned when the email is already registered.
	ErrExists = errors.New("user already exists")
)

// Repo is the persisted credential store.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateProfile(ctx context.Context, email string, profile Profile) (User, error)
}
