package joboffers

// JobOffer represents a published job posting.
type JobOffer struct {
	ID               int64  `json:"id"`
	JobTitle         string `json:"job_title"`
	JobDescription   string `json:"job_description"`
	Responsibilities string `json:"responsibilities"`
	Requirements     string `json:"requirements"`
	Benefits         string `json:"benefits"`
	StagesCount      int    `json:"stages_count"`
}
