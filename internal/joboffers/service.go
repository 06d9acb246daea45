package joboffers

import (
	"context"
	"strings"
)

// Service contains business logic for job offers.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns all postings.
func (s *Service) List(ctx context.Context) ([]JobOffer, error) {
	return s.Repo.List(ctx)
}

// Get returns a single posting by id.
func (s *Service) Get(ctx context.Context, id int64) (JobOffer, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create inserts a new posting. The stage count always starts at zero.
func (s *Service) Create(ctx context.Context, offer JobOffer) (JobOffer, error) {
	if strings.TrimSpace(offer.JobTitle) == "" {
		return JobOffer{}, ErrInvalidInput
	}
	offer.ID = 0
	offer.StagesCount = 0
	return s.Repo.Create(ctx, offer)
}
