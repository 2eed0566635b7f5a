package models

// Profile is the backend-owned multi-section profile aggregate. The client
// reads it, edits it as a whole document and re-fetches after save; there is
// no per-section patching on this side.
type Profile struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Headline string `json:"headline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`

	Skills         []string        `json:"skills"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
	Languages      []string        `json:"languages"`

	ProfileImageURL string `json:"profile_image_url"`
	CVURL           string `json:"cv_url"`
}

type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear string `json:"start_year"`
	EndYear   string `json:"end_year"`
}

// Experience carries nested responsibility lines, edited together with the
// entry itself.
type Experience struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
}

type Certification struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	IssuedAt string `json:"issued_at"`
}
