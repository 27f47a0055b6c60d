package usecase

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"ansuads/internal/core/domain"
	"ansuads/internal/core/port"
)

// AuthUseCase provides registration, credential verification and
// current-session tracking over the user and session repositories.
type AuthUseCase struct {
	users    port.UserRepository
	sessions port.SessionRepository
}

// NewAuthUseCase creates a new usecase with the provided repositories.
func NewAuthUseCase(users port.UserRepository, sessions port.SessionRepository) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions}
}

// dummyHash is a throwaway bcrypt digest compared on the unknown-email path
// so login takes roughly the same time whether the email exists or not.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sessionFor(u *domain.User) domain.Session {
	return domain.Session{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  domain.DefaultRole,
	}
}

// Register creates an account and signs it in. The raw password is digested
// with bcrypt immediately and discarded.
func (a *AuthUseCase) Register(ctx context.Context, req port.RegisterReq) (*domain.Session, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	first := strings.TrimSpace(req.FirstName)
	last := strings.TrimSpace(req.LastName)
	u := &domain.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(first + " " + last),
		FirstName:    first,
		LastName:     last,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := a.users.Create(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return a.openSession(ctx, created)
}

// Login verifies credentials and replaces the active session. Unknown email
// and wrong password are indistinguishable to the caller.
func (a *AuthUseCase) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	u, err := a.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	return a.openSession(ctx, u)
}

func (a *AuthUseCase) openSession(ctx context.Context, u *domain.User) (*domain.Session, string, error) {
	sess := sessionFor(u)
	token := uuid.NewString()
	if err := a.sessions.Put(ctx, sess, token); err != nil {
		return nil, "", err
	}
	return &sess, token, nil
}

// Logout clears the active session. Logging out twice is fine.
func (a *AuthUseCase) Logout(ctx context.Context) error {
	return a.sessions.Clear(ctx)
}

// Session returns the active session, or nil when there is none.
func (a *AuthUseCase) Session(ctx context.Context) (*domain.Session, error) {
	s, _, err := a.sessions.Get(ctx)
	return s, err
}

// IsAuthenticated reports whether an active session exists.
func (a *AuthUseCase) IsAuthenticated(ctx context.Context) bool {
	s, err := a.Session(ctx)
	return err == nil && s != nil
}

// Authenticate resolves a cookie token to the active session.
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	s, stored, err := a.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil || token == "" ||
		subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	return s, nil
}
