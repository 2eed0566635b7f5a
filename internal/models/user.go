package models

// UserRole is the two-valued role carried by the marketplace backend as the
// numeric user_type field: 0 for a regular job seeker, 1 for an administrator.
type UserRole int

const (
	RoleUser  UserRole = 0
	RoleAdmin UserRole = 1
)

func (r UserRole) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "user"
}

// User is the client-side view of the authenticated account. The backend owns
// the record; the gateway only caches it next to the bearer token for the
// lifetime of a browser profile.
type User struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"user_type"`
}
