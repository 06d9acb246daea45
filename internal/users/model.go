package users

import "time"

// User is an administrative account. Only the seed record exists in scope.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
