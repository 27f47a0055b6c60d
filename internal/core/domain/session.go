package domain

// DefaultRole is assigned to every account. There is no role management.
const DefaultRole = "admin"

// Session identifies the currently signed-in user. It is a strict subset of
// the public User fields and there is at most one active session at a time.
// The opaque cookie token used by the HTTP adapter is carried by the session
// row, not by this record.
type Session struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
