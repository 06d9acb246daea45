package joboffers

import "context"

// Repo defines persistence operations for job offers.
type Repo interface {
	List(ctx context.Context) ([]JobOffer, error)
	GetByID(ctx context.Context, id int64) (JobOffer, error)
	Create(ctx context.Context, offer JobOffer) (JobOffer, error)
}
