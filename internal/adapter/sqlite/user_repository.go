package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ansuads/internal/core/domain"
)

// UserRepository implements port.UserRepository on the embedded SQLite
// database. Emails are compared and stored lowercased; the callers normalize
// before handing them in.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userCols = `id, email, password_hash, name, first_name, last_name, created_at`

func scanUser(scanner interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := scanner.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persists a new user and assigns the next id. The duplicate check
// and the insert share one transaction, backed by the UNIQUE constraint.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM users WHERE email = ?`, u.Email).Scan(&one)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, name, first_name, last_name, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.Email, u.PasswordHash, u.Name, u.FirstName, u.LastName, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	out := *u
	out.ID = id
	return &out, nil
}

// GetByEmail returns the user for the email, or nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userCols+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
