package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetByUsername fetches a user by username.
func (r *PGRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = $1
LIMIT 1`

	var user User
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

// CreateIfAbsent inserts the user, ignoring username conflicts.
func (r *PGRepo) CreateIfAbsent(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (username, password_hash)
VALUES ($1, $2)
ON CONFLICT (username) DO NOTHING`

	_, err := r.DB.ExecContext(ctx, query, user.Username, user.PasswordHash)
	return err
}

var _ Repo = (*PGRepo)(nil)
