package cryptox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, VerifyPassword("rahasia-123", hash))
	require.Error(t, VerifyPassword("salah", hash))
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	cases := map[string]string{
		"empty":         "",
		"wrong scheme":  "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"wrong version": "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"missing parts": "$argon2id$v=19$m=19456,t=2,p=1",
	}

	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, VerifyPassword("anything", encoded))
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	a, err := GeneratePassword()
	require.NoError(t, err)
	require.Len(t, a, 12)

	b, err := GeneratePassword()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
