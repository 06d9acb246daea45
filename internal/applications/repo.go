package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	List(ctx context.Context) ([]Application, error)
	Create(ctx context.Context, app Application) (int64, error)
	// MarkCvChecked flips cv_checked to true. Matching zero rows is not an
	// error; the update is best-effort.
	MarkCvChecked(ctx context.Context, id int64) error
	// Delete removes an application by id. Deleting a missing id succeeds.
	Delete(ctx context.Context, id int64) error
	GetCoverLetter(ctx context.Context, id int64) (string, error)
	GetResume(ctx context.Context, id int64) ([]byte, error)
}
