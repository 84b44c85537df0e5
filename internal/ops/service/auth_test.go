package service

import (
	"context"
	"testing"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "https://opsdesk.test",
		Audience: []string{"opsdesk"},
	})
	require.NoError(t, err)

	return &AuthService{
		KeyManager:  km,
		Store:       newTestStore(t),
		Issuer:      "https://opsdesk.test",
		Audience:    []string{"opsdesk"},
		AccessTTL:   time.Minute,
		RememberTTL: time.Hour,
	}
}

func TestLoginIssuesAccessToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	seedProfile(t, svc.Store, "budi@prakarsa.example", "Budi", domain.RoleAdmin, "rahasia-123")

	pair, profile, err := svc.Login(ctx, "budi@prakarsa.example", "rahasia-123", false)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.Empty(t, pair.RememberToken)
	require.Equal(t, "Bearer", pair.TokenType)
	require.Equal(t, domain.RoleAdmin, profile.Role)

	claims, err := svc.KeyManager.Verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, profile.ID, claims.Subject)
	require.Equal(t, domain.RoleAdmin, claims.Role)
	require.Equal(t, "Budi", claims.DisplayName)
	require.Equal(t, "budi@prakarsa.example", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	seedProfile(t, svc.Store, "budi@prakarsa.example", "Budi", domain.RoleAdmin, "rahasia-123")

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "budi@prakarsa.example", "salah", false)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@prakarsa.example", "rahasia-123", false)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshRotatesRememberToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	seedProfile(t, svc.Store, "budi@prakarsa.example", "Budi", domain.RoleAdmin, "rahasia-123")

	pair, _, err := svc.Login(ctx, "budi@prakarsa.example", "rahasia-123", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.RememberToken)

	refreshed, profile, err := svc.Refresh(ctx, pair.RememberToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
	require.NotEmpty(t, refreshed.RememberToken)
	require.NotEqual(t, pair.RememberToken, refreshed.RememberToken)
	require.Equal(t, "budi@prakarsa.example", profile.Email)

	// The presented token was revoked by the rotation.
	_, _, err = svc.Refresh(ctx, pair.RememberToken)
	require.ErrorIs(t, err, ErrInvalidRemember)

	// The rotated token still works.
	_, _, err = svc.Refresh(ctx, refreshed.RememberToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Refresh(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidRemember)
}

func TestLogoutRevokesBestEffort(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	seedProfile(t, svc.Store, "budi@prakarsa.example", "Budi", domain.RoleAdmin, "rahasia-123")

	pair, _, err := svc.Login(ctx, "budi@prakarsa.example", "rahasia-123", true)
	require.NoError(t, err)

	svc.Logout(ctx, pair.RememberToken)

	_, _, err = svc.Refresh(ctx, pair.RememberToken)
	require.ErrorIs(t, err, ErrInvalidRemember)

	// Unknown and empty tokens are quietly accepted.
	svc.Logout(ctx, "no-such-token")
	svc.Logout(ctx, "")
}
