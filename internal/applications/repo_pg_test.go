package applications

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateBindsAllFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	jobOfferID := int64(3)
	app := Application{
		ApplicantName:  "Ada Lovelace",
		ApplicantEmail: "ada@example.com",
		PhoneNumber:    "555-0101",
		JobOfferID:     &jobOfferID,
		CoverLetter:    "Dear team",
		AgreeToTerms:   true,
		Resume:         []byte("%PDF-1.4 fake"),
	}

	mock.ExpectQuery("INSERT INTO applications").
		WithArgs(
			app.ApplicantName,
			app.ApplicantEmail,
			app.PhoneNumber,
			jobOfferID,
			app.CoverLetter,
			true,
			app.Resume,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	id, err := repo.Create(context.Background(), app)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 12 {
		t.Fatalf("expected id 12, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoMarkCvCheckedZeroRowsIsSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE applications SET cv_checked").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkCvChecked(context.Background(), 404); err != nil {
		t.Fatalf("MarkCvChecked with no matching row: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM applications").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM applications").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := repo.Delete(context.Background(), 5); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetResumeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT resume FROM applications").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"resume"}))

	if _, err := repo.GetResume(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCoverLetterNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT cover_letter FROM applications").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"cover_letter"}))

	if _, err := repo.GetCoverLetter(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
