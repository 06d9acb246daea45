package applications

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	apps   []Application
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// List returns all applications in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, len(r.apps))
	copy(out, r.apps)
	return out, nil
}

// Create stores an application, assigning the next id.
func (r *MemoryRepo) Create(ctx context.Context, app Application) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = r.nextID
	app.CreatedAt = time.Now().UTC()
	r.nextID++
	r.apps = append(r.apps, app)
	return app.ID, nil
}

// MarkCvChecked flips cv_checked on a matching row. Zero matches is success.
func (r *MemoryRepo) MarkCvChecked(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps[i].CvChecked = true
			return nil
		}
	}
	return nil
}

// Delete removes a matching row. Missing ids are treated as deleted.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps = append(r.apps[:i], r.apps[i+1:]...)
			return nil
		}
	}
	return nil
}

// GetCoverLetter returns the cover letter text for an application.
func (r *MemoryRepo) GetCoverLetter(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			return r.apps[i].CoverLetter, nil
		}
	}
	return "", ErrNotFound
}

// GetResume returns the resume bytes for an application.
func (r *MemoryRepo) GetResume(ctx context.Context, id int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.apps {
		if r.apps[i].ID == id {
			return r.apps[i].Resume, nil
		}
	}
	return nil, ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
