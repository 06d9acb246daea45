package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]User
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, users: make(map[string]User)}
}

// GetByUsername returns the user with the given username.
func (r *MemoryRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

// CreateIfAbsent stores the user unless the username already exists.
func (r *MemoryRepo) CreateIfAbsent(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return nil
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	r.nextID++
	r.users[user.Username] = user
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
