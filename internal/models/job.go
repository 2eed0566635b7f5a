package models

// Job is a posting from the upstream catalogue. Read-only on this side; the
// field set mirrors what the backend serves on /jobs/all and /jobs/:id.
type Job struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Location          string `json:"location"`
	PostedTime        string `json:"posted_time"`
	PublishedAt       string `json:"published_at"`
	JobURL            string `json:"job_url"`
	CompanyName       string `json:"company_name"`
	CompanyURL        string `json:"company_url"`
	Description       string `json:"description"`
	ApplicationsCount string `json:"applications_count"`
	ContractType      string `json:"contract_type"`
	ExperienceLevel   string `json:"experience_level"`
	WorkType          string `json:"work_type"`
	Sector            string `json:"sector"`
	Salary            string `json:"salary"`
	PosterFullName    string `json:"poster_full_name"`
	PosterProfileURL  string `json:"poster_profile_url"`
	CompanyID         string `json:"company_id"`
	ApplyURL          string `json:"apply_url"`
	Benefits          string `json:"benefits"`
}

// PurchasedJob is one row of the job purchase history (POST /jobs/my-jobs).
type PurchasedJob struct {
	UserJobID   int64  `json:"user_job_id"`
	UserID      int64  `json:"user_id"`
	JobID       int64  `json:"job_id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	PurchasedAt string `json:"purchased_at"`
	Status      string `json:"status"`
}
