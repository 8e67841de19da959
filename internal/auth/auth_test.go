package auth_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"court-reservation-api/internal/auth"
	"court-reservation-api/internal/boltstore"
	"court-reservation-api/internal/model"
)

const secret = "test-secret"

func setup(t *testing.T) (*auth.Authenticator, *boltstore.Store) {
	t.Helper()
	st, err := boltstore.Open(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	add := func(username string, typeCode int, status model.AccountStatus) {
		hash, err := auth.HashPassword("secret123")
		require.NoError(t, err)
		require.NoError(t, st.CreateAccount(context.Background(), &model.Account{
			TypeCode: typeCode, Username: username, PasswordHash: hash, Status: status,
		}))
	}
	add("alice", 1, model.AccountActive)
	add("root", 0, model.AccountActive)
	add("bob", 1, model.AccountInactive)
	add("ghost", 7, model.AccountActive)

	a := auth.NewAuthenticator(auth.NewBcryptVerifier(st), secret, time.Hour, zaptest.NewLogger(t))
	return a, st
}

func TestLogin(t *testing.T) {
	a, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		user, pw string
		want     error
		role     model.Role
	}{
		{"user", "alice", "secret123", nil, model.RoleUser},
		{"admin", "root", "secret123", nil, model.RoleAdmin},
		{"padded username", "  alice ", "secret123", nil, model.RoleUser},
		{"wrong password", "alice", "nope", auth.ErrBadCredentials, 0},
		{"unknown user", "carol", "secret123", auth.ErrBadCredentials, 0},
		{"empty", "", "", auth.ErrBadCredentials, 0},
		{"inactive", "bob", "secret123", auth.ErrAccountInactive, 0},
		{"inactive wrong password", "bob", "nope", auth.ErrBadCredentials, 0},
		{"unknown role", "ghost", "secret123", auth.ErrUnknownRole, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := a.Login(ctx, tt.user, tt.pw)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			claims, err := auth.ParseToken(s.Token, secret)
			require.NoError(t, err)
			assert.Equal(t, s.Account.ID, claims.AccountID)
			assert.Equal(t, tt.role.String(), claims.Role)
			assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt, time.Minute)
		})
	}
}

func TestParseToken(t *testing.T) {
	tok, _, err := auth.MakeToken(3, model.RoleUser, secret, time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(tok, "other-secret")
	assert.Error(t, err)

	expired, _, err := auth.MakeToken(3, model.RoleUser, secret, -time.Minute)
	require.NoError(t, err)
	_, err = auth.ParseToken(expired, secret)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired), "got %v", err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{AccountID: 3}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = auth.ParseToken(none, secret)
	assert.Error(t, err)
}

func TestEnsureAdmin(t *testing.T) {
	_, st := setup(t)
	ctx := context.Background()

	created, err := auth.EnsureAdmin(ctx, st, "admin", "changeme123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = auth.EnsureAdmin(ctx, st, "admin", "changeme123")
	require.NoError(t, err)
	assert.False(t, created)

	a, err := st.AccountByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, a.Role())
	assert.True(t, auth.CheckPassword(a.PasswordHash, "changeme123"))
}

type stalledVerifier struct{}

func (stalledVerifier) Verify(ctx context.Context, _, _ string) (*model.Account, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestLoginTimeout(t *testing.T) {
	a := auth.NewAuthenticator(stalledVerifier{}, secret, time.Hour, zaptest.NewLogger(t),
		auth.WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := a.Login(context.Background(), "alice", "secret123")
	assert.ErrorIs(t, err, model.ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}
