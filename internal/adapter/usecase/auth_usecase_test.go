package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ansuads/internal/adapter/sqlite"
	"ansuads/internal/config/configs"
	"ansuads/internal/core/domain"
	"ansuads/internal/core/port"
	"ansuads/internal/db"
)

func newAuth(t *testing.T) (*AuthUseCase, *sqlite.UserRepository) {
	t.Helper()
	database, err := db.Open(configs.SQLite{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, db.Migrate(database))

	users := sqlite.NewUserRepository(database)
	return NewAuthUseCase(users, sqlite.NewSessionRepository(database)), users
}

func TestRegisterThenLogin(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	sess, token, err := auth.Register(ctx, port.RegisterReq{
		Email:     "a@b.com",
		Password:  "password123",
		FirstName: "A",
		LastName:  "B",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "a@b.com", sess.Email)
	assert.Equal(t, "A B", sess.Name)
	assert.Equal(t, domain.DefaultRole, sess.Role)
	assert.True(t, auth.IsAuthenticated(ctx))

	require.NoError(t, auth.Logout(ctx))
	assert.False(t, auth.IsAuthenticated(ctx))

	_, _, err = auth.Login(ctx, "a@b.com", "wrongpass")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, auth.IsAuthenticated(ctx))

	restored, _, err := auth.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, sess.Email, restored.Email)
	assert.Equal(t, sess.Name, restored.Name)
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _ := newAuth(t)

	_, _, err := auth.Login(context.Background(), "nobody@b.com", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, port.RegisterReq{
		Email: "A@x.com", Password: "password123", FirstName: "A", LastName: "One",
	})
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, port.RegisterReq{
		Email: "a@x.com", Password: "password456", FirstName: "A", LastName: "Two",
	})
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, port.RegisterReq{
		Email: "Mixed@Case.com", Password: "password123", FirstName: "M", LastName: "C",
	})
	require.NoError(t, err)

	_, _, err = auth.Login(ctx, "mixed@case.com", "password123")
	require.NoError(t, err)
}

func TestPasswordStoredOnlyAsDigest(t *testing.T) {
	auth, users := newAuth(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, port.RegisterReq{
		Email: "a@b.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	u, err := users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotContains(t, u.PasswordHash, "password123")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
}

func TestAuthenticateToken(t *testing.T) {
	auth, _ := newAuth(t)
	ctx := context.Background()

	_, token, err := auth.Register(ctx, port.RegisterReq{
		Email: "a@b.com", Password: "password123", FirstName: "A", LastName: "B",
	})
	require.NoError(t, err)

	sess, err := auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", sess.Email)

	_, err = auth.Authenticate(ctx, "forged")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Logging in rotates the token; the old one stops working.
	_, fresh, err := auth.Login(ctx, "a@b.com", "password123")
	require.NoError(t, err)
	require.NotEqual(t, token, fresh)
	_, err = auth.Authenticate(ctx, token)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	require.NoError(t, auth.Logout(ctx))
	_, err = auth.Authenticate(ctx, fresh)
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
