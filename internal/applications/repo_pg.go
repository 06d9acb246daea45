package applications

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all applications, resume bytes included.
func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	const query = `
SELECT id, applicant_name, applicant_email, phone_number, job_offer_id, cover_letter, agree_to_terms, resume, cv_checked, created_at
FROM applications
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		var app Application
		var phone, coverLetter sql.NullString
		var jobOfferID sql.NullInt64
		if err := rows.Scan(
			&app.ID,
			&app.ApplicantName,
			&app.ApplicantEmail,
			&phone,
			&jobOfferID,
			&coverLetter,
			&app.AgreeToTerms,
			&app.Resume,
			&app.CvChecked,
			&app.CreatedAt,
		); err != nil {
			return nil, err
		}
		app.PhoneNumber = phone.String
		app.CoverLetter = coverLetter.String
		if jobOfferID.Valid {
			id := jobOfferID.Int64
			app.JobOfferID = &id
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// Create inserts an application and returns the generated id.
func (r *PGRepo) Create(ctx context.Context, app Application) (int64, error) {
	const query = `
INSERT INTO applications (applicant_name, applicant_email, phone_number, job_offer_id, cover_letter, agree_to_terms, resume)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	var jobOfferID any
	if app.JobOfferID != nil {
		jobOfferID = *app.JobOfferID
	}
	var phone any
	if app.PhoneNumber != "" {
		phone = app.PhoneNumber
	}

	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		query,
		app.ApplicantName,
		app.ApplicantEmail,
		phone,
		jobOfferID,
		app.CoverLetter,
		app.AgreeToTerms,
		app.Resume,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// MarkCvChecked flips cv_checked to true. Zero affected rows is success.
func (r *PGRepo) MarkCvChecked(ctx context.Context, id int64) error {
	const query = `UPDATE applications SET cv_checked = true WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

// Delete removes an application row. Missing ids are treated as deleted.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM applications WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

// GetCoverLetter returns the stored cover letter text.
func (r *PGRepo) GetCoverLetter(ctx context.Context, id int64) (string, error) {
	const query = `SELECT cover_letter FROM applications WHERE id = $1 LIMIT 1`
	var coverLetter sql.NullString
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&coverLetter); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return coverLetter.String, nil
}

// GetResume returns the stored resume bytes.
func (r *PGRepo) GetResume(ctx context.Context, id int64) ([]byte, error) {
	const query = `SELECT resume FROM applications WHERE id = $1 LIMIT 1`
	var resume []byte
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&resume); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
