package joboffers

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	offers []JobOffer
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// List returns all postings in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]JobOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobOffer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

// GetByID returns the posting with the given id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (JobOffer, error) {
	if err := ctx.Err(); err != nil {
		return JobOffer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.offers {
		if r.offers[i].ID == id {
			return r.offers[i], nil
		}
	}
	return JobOffer{}, ErrNotFound
}

// Create stores a posting, assigning the next id.
func (r *MemoryRepo) Create(ctx context.Context, offer JobOffer) (JobOffer, error) {
	if err := ctx.Err(); err != nil {
		return JobOffer{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	offer.ID = r.nextID
	r.nextID++
	r.offers = append(r.offers, offer)
	return offer, nil
}

var _ Repo = (*MemoryRepo)(nil)
