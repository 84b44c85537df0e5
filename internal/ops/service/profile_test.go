package service

import (
	"context"
	"testing"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestCreateStaff(t *testing.T) {
	svc := &ProfileService{Store: newTestStore(t)}
	ctx := context.Background()

	profile, initialPassword, err := svc.CreateStaff(ctx, "Sari@Prakarsa.Example", "Sari", domain.RoleMarketing, "")
	require.NoError(t, err)
	require.Len(t, initialPassword, 12)

	// Email is normalised; the password is stored as a hash only.
	require.Equal(t, "sari@prakarsa.example", profile.Email)
	require.NotContains(t, profile.PasswordHash, initialPassword)
	require.NoError(t, cryptox.VerifyPassword(initialPassword, profile.PasswordHash))

	t.Run("uses the given password when provided", func(t *testing.T) {
		p, initial, err := svc.CreateStaff(ctx, "andi@prakarsa.example", "Andi", domain.RoleSales, "rahasia-123")
		require.NoError(t, err)
		require.Empty(t, initial)
		require.NoError(t, cryptox.VerifyPassword("rahasia-123", p.PasswordHash))
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, _, err := svc.CreateStaff(ctx, "x@prakarsa.example", "X", "Supervisor", "")
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, _, err := svc.CreateStaff(ctx, "sari@prakarsa.example", "Sari Dua", domain.RoleSales, "")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestUpdateStaff(t *testing.T) {
	svc := &ProfileService{Store: newTestStore(t)}
	ctx := context.Background()

	profile, _, err := svc.CreateStaff(ctx, "sari@prakarsa.example", "Sari", domain.RoleMarketing, "")
	require.NoError(t, err)

	updated, err := svc.UpdateStaff(ctx, profile.ID, "Sari Wijaya", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, "Sari Wijaya", updated.DisplayName)
	require.Equal(t, domain.RoleAdmin, updated.Role)

	_, err = svc.UpdateStaff(ctx, "no-such-id", "X", domain.RoleAdmin)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestChangePasswordRevokesRememberTokens(t *testing.T) {
	st := newTestStore(t)
	svc := &ProfileService{Store: st}
	auth := newAuthService(t)
	auth.Store = st
	ctx := context.Background()

	seedProfile(t, st, "budi@prakarsa.example", "Budi", domain.RoleAdmin, "rahasia-123")

	pair, profile, err := auth.Login(ctx, "budi@prakarsa.example", "rahasia-123", true)
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, profile.ID, "rahasia-baru"))

	// Old password dead, old remember token dead, new password works.
	_, _, err = auth.Login(ctx, "budi@prakarsa.example", "rahasia-123", false)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Refresh(ctx, pair.RememberToken)
	require.ErrorIs(t, err, ErrInvalidRemember)

	_, _, err = auth.Login(ctx, "budi@prakarsa.example", "rahasia-baru", false)
	require.NoError(t, err)
}

func TestDeleteStaffCascades(t *testing.T) {
	st := newTestStore(t)
	svc := &ProfileService{Store: st}
	feed := NewFeed()
	notifier := &Notifier{Store: st, Feed: feed}
	ctx := context.Background()

	director := seedProfile(t, st, "dir@prakarsa.example", "Direktur", domain.RoleDirektur, "rahasia-123")
	require.NoError(t, notifier.TriggerActivity(ctx, Actor{ID: "a", DisplayName: "A"}, domain.ActivityPOCreated, "PO-1"))

	require.NoError(t, svc.DeleteStaff(ctx, director.ID))

	_, err := st.Profiles().GetProfileByID(ctx, director.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	rows, err := st.Notifications().ListNotifications(ctx, director.ID, 10)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestEnsureBootstrapAdmin(t *testing.T) {
	svc := &ProfileService{Store: newTestStore(t)}
	ctx := context.Background()

	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, "owner@prakarsa.example", "rahasia-123", "Owner"))

	staff, err := svc.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	require.Equal(t, domain.RoleDirektur, staff[0].Role)

	// A second call is a no-op once any profile exists.
	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, "owner@prakarsa.example", "rahasia-123", "Owner"))

	staff, err = svc.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
}
