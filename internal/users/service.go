package users

import (
	"context"
	"errors"
	"strings"

	"jobportal-backend/internal/shared/auth"
)

// Service contains credential verification and seeding logic.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Login verifies the claimed identity against the stored password hash and
// issues an expiring signed token. Unknown users and hash mismatches are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", ErrUnauthorized
	}

	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", ErrUnauthorized
	}

	return auth.SignJWT(auth.Claims{Sub: user.Username})
}

// EnsureSeed inserts the seed admin record if absent, hashing the configured
// password. Running it again against an existing record is a no-op.
func (s *Service) EnsureSeed(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return errors.New("seed username and password are required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.Repo.CreateIfAbsent(ctx, User{Username: username, PasswordHash: hash})
}
