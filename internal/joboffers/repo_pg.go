package joboffers

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all postings.
func (r *PGRepo) List(ctx context.Context) ([]JobOffer, error) {
	const query = `
SELECT id, job_title, job_description, responsibilities, requirements, benefits, stages_count
FROM job_offers
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []JobOffer{}
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, offer)
	}
	return out, rows.Err()
}

// GetByID fetches a posting by primary key.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (JobOffer, error) {
	const query = `
SELECT id, job_title, job_description, responsibilities, requirements, benefits, stages_count
FROM job_offers
WHERE id = $1
LIMIT 1`

	offer, err := scanOffer(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobOffer{}, ErrNotFound
		}
		return JobOffer{}, err
	}
	return offer, nil
}

// Create inserts a posting and returns it with the generated id.
func (r *PGRepo) Create(ctx context.Context, offer JobOffer) (JobOffer, error) {
	const query = `
INSERT INTO job_offers (job_title, job_description, responsibilities, requirements, benefits, stages_count)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		offer.JobTitle,
		nullableString(offer.JobDescription),
		nullableString(offer.Responsibilities),
		nullableString(offer.Requirements),
		nullableString(offer.Benefits),
		offer.StagesCount,
	).Scan(&offer.ID)
	if err != nil {
		return JobOffer{}, err
	}
	return offer, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (JobOffer, error) {
	var offer JobOffer
	var description, responsibilities, requirements, benefits sql.NullString
	err := row.Scan(
		&offer.ID,
		&offer.JobTitle,
		&description,
		&responsibilities,
		&requirements,
		&benefits,
		&offer.StagesCount,
	)
	if err != nil {
		return JobOffer{}, err
	}
	offer.JobDescription = description.String
	offer.Responsibilities = responsibilities.String
	offer.Requirements = requirements.String
	offer.Benefits = benefits.String
	return offer, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
