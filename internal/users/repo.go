package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no user matched the given username.
	ErrNotFound = errors.New("user not found")

	// ErrUnauthorized indicates a credential mismatch.
	ErrUnauthorized = errors.New("invalid credentials")
)

// Repo defines persistence operations for users.
type Repo interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	// CreateIfAbsent inserts a user unless the username already exists.
	// A duplicate attempt is not an error and never creates a second record.
	CreateIfAbsent(ctx context.Context, user User) error
}
