package applications

import "time"

// Application represents a submitted job application. The resume bytes and
// cover letter are stored inline on the record.
type Application struct {
	ID             int64     `json:"id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	PhoneNumber    string    `json:"phone_number"`
	JobOfferID     *int64    `json:"job_offer_id"`
	CoverLetter    string    `json:"cover_letter"`
	AgreeToTerms   bool      `json:"agree_to_terms"`
	Resume         []byte    `json:"resume"`
	CvChecked      bool      `json:"cv_checked"`
	CreatedAt      time.Time `json:"created_at"`
}
