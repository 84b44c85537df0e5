package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/internal/ops/store/drivers/sqlite"
	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "opsdesk_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedProfile(t *testing.T, st store.Store, email, displayName, role, password string) domain.Profile {
	t.Helper()

	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	p := domain.Profile{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  displayName,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Profiles().CreateProfile(context.Background(), p))
	return p
}
