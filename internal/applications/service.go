package applications

import (
	"context"
	"strconv"
	"strings"
)

// Service contains business logic for applications.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Submission carries the external representation of an application form.
// JobOfferID and AgreeToTerms arrive as form text and are normalized here.
type Submission struct {
	ApplicantName  string
	ApplicantEmail string
	PhoneNumber    string
	JobOfferID     string
	CoverLetter    string
	AgreeToTerms   string
}

// List returns all applications, resume bytes included.
func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.Repo.List(ctx)
}

// Submit validates and persists an application. The resume must be present
// and non-empty; everything else is stored as given.
func (s *Service) Submit(ctx context.Context, sub Submission, resume []byte) (int64, error) {
	if len(resume) == 0 {
		return 0, ErrResumeRequired
	}

	app := Application{
		ApplicantName:  sub.ApplicantName,
		ApplicantEmail: sub.ApplicantEmail,
		PhoneNumber:    sub.PhoneNumber,
		CoverLetter:    sub.CoverLetter,
		AgreeToTerms:   normalizeAgreeToTerms(sub.AgreeToTerms),
		Resume:         resume,
	}
	if raw := strings.TrimSpace(sub.JobOfferID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, ErrInvalidInput
		}
		app.JobOfferID = &id
	}

	return s.Repo.Create(ctx, app)
}

// MarkCvChecked flips cv_checked to true; ids with no matching row succeed.
func (s *Service) MarkCvChecked(ctx context.Context, id int64) error {
	return s.Repo.MarkCvChecked(ctx, id)
}

// Delete removes an application by id; repeated deletes succeed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

// CoverLetter returns the stored cover letter text.
func (s *Service) CoverLetter(ctx context.Context, id int64) (string, error) {
	return s.Repo.GetCoverLetter(ctx, id)
}

// Resume returns the stored resume bytes.
func (s *Service) Resume(ctx context.Context, id int64) ([]byte, error) {
	return s.Repo.GetResume(ctx, id)
}

// normalizeAgreeToTerms maps the textual form value onto a boolean. Only the
// literal "true" counts as agreement.
func normalizeAgreeToTerms(raw string) bool {
	return raw == "true"
}
