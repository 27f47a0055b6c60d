package port

import (
	"context"

	"ansuads/internal/core/domain"
)

// UserRepository persists registered accounts. Emails are stored lowercased
// and are unique case-insensitively.
type UserRepository interface {
	// Create persists a new user, assigning the next id. It returns
	// domain.ErrDuplicateEmail when the email is already on file.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// GetByEmail returns the user for the (case-insensitive) email, or
	// nil when no such user exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID returns the user with the given id, or nil when absent.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SessionRepository owns the singleton active-session row. The token is an
// opaque value handed to the HTTP adapter as a cookie; it is not part of the
// domain Session record.
type SessionRepository interface {
	// Put replaces the active session. Any previous session is discarded.
	Put(ctx context.Context, s domain.Session, token string) error
	// Get returns the active session and its token. An absent, corrupted
	// or dangling session (its user no longer exists) reads as
	// (nil, "", nil), never as an error.
	Get(ctx context.Context) (*domain.Session, string, error)
	// Clear removes the active session. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context) error
}
