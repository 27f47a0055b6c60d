package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ansuads/internal/core/domain"
)

// SessionRepository implements port.SessionRepository on the embedded SQLite
// database. The session table holds at most one row; Put replaces it
// wholesale, Get joins users so that a session whose user has disappeared
// reads as "no session".
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository returns a new repository instance.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Put replaces the singleton session row.
func (r *SessionRepository) Put(ctx context.Context, s domain.Session, token string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session (singleton, user_id, token, role, created_at)
		 VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)`,
		s.ID, token, s.Role)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Get returns the active session and its cookie token. A missing row, a
// dangling user reference or an unreadable row all resolve to no session
// rather than an error; the identity layer self-heals by signing out.
func (r *SessionRepository) Get(ctx context.Context) (*domain.Session, string, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT u.id, u.email, u.name, s.role, s.token
		 FROM session s JOIN users u ON u.id = s.user_id
		 WHERE s.singleton = 1`)

	var s domain.Session
	var token string
	err := row.Scan(&s.ID, &s.Email, &s.Name, &s.Role, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		// Corrupted session state is treated as signed out.
		return nil, "", nil
	}
	return &s, token, nil
}

// Clear removes the session row. Clearing an empty table is not an error.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
