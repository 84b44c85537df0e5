package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
)

func newManager(t *testing.T) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "https://opsdesk.test",
		Audience: []string{"opsdesk"},
	})
	require.NoError(t, err)
	return km
}

func TestEdDSASignAndVerify(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	claims := jwtx.NewAccessClaims(
		"user-1", "session-1",
		"Admin", "Budi Santoso", "budi@prakarsa.example",
		time.Hour,
		"https://opsdesk.test",
		[]string{"opsdesk"},
		time.Now().UTC(),
	)

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	got, err := km.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "Admin", got.Role)
	require.Equal(t, "Budi Santoso", got.DisplayName)
	require.Equal(t, "budi@prakarsa.example", got.Email)
}

func TestEdDSARejectsExpiredToken(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	claims := jwtx.NewAccessClaims(
		"user-1", "session-1",
		"Sales", "Siti", "siti@prakarsa.example",
		time.Hour,
		"https://opsdesk.test",
		[]string{"opsdesk"},
		time.Now().UTC().Add(-2*time.Hour),
	)

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.Error(t, err)
}

func TestEdDSARejectsWrongIssuer(t *testing.T) {
	t.Parallel()
	km := newManager(t)

	claims := jwtx.NewAccessClaims(
		"user-1", "session-1",
		"Produksi", "Agus", "agus@prakarsa.example",
		time.Hour,
		"https://somewhere-else.test",
		[]string{"opsdesk"},
		time.Now().UTC(),
	)

	token, err := km.Signer.Sign(claims)
	require.NoError(t, err)

	_, err = km.Verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestEdDSARejectsForeignKey(t *testing.T) {
	t.Parallel()
	km := newManager(t)
	other := newManager(t)

	claims := jwtx.NewAccessClaims(
		"user-1", "session-1",
		"Direktur", "Pak Dirman", "dirman@prakarsa.example",
		time.Hour,
		"https://opsdesk.test",
		[]string{"opsdesk"},
		time.Now().UTC(),
	)

	token, err := other.Signer.Sign(claims)
	require.NoError(t, err)

	// Signed with a key the verifier's KeySet has never seen.
	_, err = km.Verifier.Verify(token)
	require.Error(t, err)
}
