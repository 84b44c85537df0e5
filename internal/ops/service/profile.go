package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

var ErrInvalidRole = errors.New("invalid_role")

// ProfileService manages staff accounts.
type ProfileService struct {
	Store store.Store
}

// GetProfileByID fetches a staff profile by id.
func (s *ProfileService) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	return s.Store.Profiles().GetProfileByID(ctx, id)
}

// ListStaff returns all staff profiles ordered by display name.
func (s *ProfileService) ListStaff(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfiles(ctx)
}

// ListSales returns the Sales-role profiles for the purchase order form's
// sales dropdown.
func (s *ProfileService) ListSales(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfilesByRole(ctx, domain.RoleSales)
}

// CreateStaff creates a staff account. With an empty password, an initial
// password is generated and returned exactly once; only the argon2 hash is
// stored either way.
func (s *ProfileService) CreateStaff(ctx context.Context, email, displayName, role, password string) (domain.Profile, string, error) {
	if !domain.ValidRole(role) {
		return domain.Profile{}, "", ErrInvalidRole
	}

	email = strings.ToLower(strings.TrimSpace(email))

	var initialPassword string
	if password == "" {
		generated, err := cryptox.GeneratePassword()
		if err != nil {
			return domain.Profile{}, "", err
		}
		password = generated
		initialPassword = generated
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Profile{}, "", err
	}

	now := time.Now()
	profile := domain.Profile{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  displayName,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Profiles().CreateProfile(ctx, profile); err != nil {
		return domain.Profile{}, "", err
	}

	return profile, initialPassword, nil
}

// UpdateStaff changes a staff member's display name and role.
func (s *ProfileService) UpdateStaff(ctx context.Context, id, displayName, role string) (domain.Profile, error) {
	if !domain.ValidRole(role) {
		return domain.Profile{}, ErrInvalidRole
	}

	if err := s.Store.Profiles().UpdateProfile(ctx, id, displayName, role); err != nil {
		return domain.Profile{}, err
	}

	return s.Store.Profiles().GetProfileByID(ctx, id)
}

// ChangePassword replaces a staff member's password and revokes every
// remember token they hold, forcing a fresh login on other devices.
func (s *ProfileService) ChangePassword(ctx context.Context, id, newPassword string) error {
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().UpdatePasswordHash(ctx, id, hash); err != nil {
			return err
		}
		return tx.RememberTokens().RevokeAllUserRememberTokens(ctx, id)
	})
}

// DeleteStaff removes a staff account. Remember tokens and notifications
// go with it via the schema's cascades.
func (s *ProfileService) DeleteStaff(ctx context.Context, id string) error {
	return s.Store.Profiles().DeleteProfile(ctx, id)
}

// EnsureBootstrapAdmin creates the first Direktur account when the profiles
// table is empty, so a fresh deployment is reachable. No-op otherwise.
func (s *ProfileService) EnsureBootstrapAdmin(ctx context.Context, email, password, displayName string) error {
	empty, err := s.Store.Profiles().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	profile := domain.Profile{
		ID:           idx.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		DisplayName:  displayName,
		Role:         domain.RoleDirektur,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Profiles().CreateProfile(ctx, profile); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("bootstrap admin created", slog.String("email", profile.Email))
	return nil
}
