package port

import (
	"context"

	"ansuads/internal/core/domain"
)

// AuthUseCase defines registration, credential verification and
// current-session tracking. This is the primary port into the identity side
// of the application.
type AuthUseCase interface {
	// Register creates an account, signs it in and returns the new session
	// together with its cookie token. The raw password is digested with
	// bcrypt and never stored or logged.
	Register(ctx context.Context, req RegisterReq) (*domain.Session, string, error)
	// Login verifies credentials and replaces the active session. Unknown
	// email and wrong password both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.Session, string, error)
	// Logout clears the active session. It is idempotent.
	Logout(ctx context.Context) error
	// Session returns the active session, or nil when there is none.
	Session(ctx context.Context) (*domain.Session, error)
	// IsAuthenticated reports whether an active session exists.
	IsAuthenticated(ctx context.Context) bool
	// Authenticate resolves a cookie token to the active session. A
	// missing session or a token mismatch returns
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// RegisterReq carries the registration form fields.
type RegisterReq struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}
