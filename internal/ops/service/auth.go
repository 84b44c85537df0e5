package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/cryptox"
	"github.com/prakarsateknik/opsdesk/pkg/idx"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRemember    = errors.New("invalid_remember_token")
	ErrInvalidSession     = errors.New("invalid_session")
)

// AuthService issues and refreshes dashboard sessions: a short-lived EdDSA
// access token plus an optional long-lived opaque remember token.
type AuthService struct {
	KeyManager  *jwtx.KeyManager
	Store       store.Store
	Issuer      string
	Audience    []string
	AccessTTL   time.Duration
	RememberTTL time.Duration
}

// Login verifies the email/password pair and mints a token pair. When
// remember is set, an opaque remember token is created alongside.
func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (*domain.TokenPair, domain.Profile, error) {
	now := time.Now()
	l := slogx.FromContext(ctx)

	profile, err := s.Store.Profiles().GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.Profile{}, ErrInvalidCredentials
		}
		return nil, domain.Profile{}, err
	}

	if err := cryptox.VerifyPassword(password, profile.PasswordHash); err != nil {
		l.Info("password verification failed", slog.String("email", email))
		return nil, domain.Profile{}, ErrInvalidCredentials
	}

	sessionID := idx.New().String()

	accessToken, err := s.signAccess(profile, sessionID, now)
	if err != nil {
		return nil, domain.Profile{}, err
	}

	pair := &domain.TokenPair{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.AccessTTL,
	}

	if remember {
		opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, domain.Profile{}, err
		}

		record := domain.RememberToken{
			ID:        idx.New().String(),
			UserID:    profile.ID,
			TokenHash: cryptox.FingerprintToken(opaque),
			SessionID: sessionID,
			ExpiresAt: now.Add(s.RememberTTL),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Store.RememberTokens().CreateRememberToken(ctx, record); err != nil {
			return nil, domain.Profile{}, err
		}

		pair.RememberToken = opaque
	}

	return pair, profile, nil
}

// Refresh redeems a remember token for a fresh access token. The remember
// token is rotated: the presented one is revoked and a new one issued in
// the same transaction, so a stolen old token is worthless after first use.
func (s *AuthService) Refresh(ctx context.Context, rememberOpaque string) (*domain.TokenPair, domain.Profile, error) {
	now := time.Now()
	fp := cryptox.FingerprintToken(rememberOpaque)

	var (
		pair    *domain.TokenPair
		profile domain.Profile
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		record, err := tx.RememberTokens().GetRememberTokenByHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRemember
			}
			return err
		}

		if record.Revoked || now.After(record.ExpiresAt) {
			return ErrInvalidRemember
		}

		profile, err = tx.Profiles().GetProfileByID(ctx, record.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Token outlived its profile; treat as a dead session.
				return ErrInvalidRemember
			}
			return err
		}

		accessToken, err := s.signAccess(profile, record.SessionID, now)
		if err != nil {
			return err
		}

		newOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}

		if err := tx.RememberTokens().RevokeRememberToken(ctx, fp); err != nil {
			return err
		}

		next := domain.RememberToken{
			ID:        idx.New().String(),
			UserID:    record.UserID,
			TokenHash: cryptox.FingerprintToken(newOpaque),
			SessionID: record.SessionID,
			ExpiresAt: now.Add(s.RememberTTL),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.RememberTokens().CreateRememberToken(ctx, next); err != nil {
			return err
		}

		pair = &domain.TokenPair{
			AccessToken:   accessToken,
			RememberToken: newOpaque,
			TokenType:     "Bearer",
			ExpiresIn:     s.AccessTTL,
		}
		return nil
	})
	if err != nil {
		return nil, domain.Profile{}, err
	}

	return pair, profile, nil
}

// Logout revokes the remember token best-effort. It always succeeds so
// clients proceed to the login page regardless of server state.
func (s *AuthService) Logout(ctx context.Context, rememberOpaque string) {
	if rememberOpaque == "" {
		return
	}

	fp := cryptox.FingerprintToken(rememberOpaque)
	if err := s.Store.RememberTokens().RevokeRememberToken(ctx, fp); err != nil {
		slogx.FromContext(ctx).Warn("remember token revocation failed", slog.Any("error", err))
	}
}

func (s *AuthService) signAccess(p domain.Profile, sessionID string, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		p.ID,          // subject
		sessionID,     // session ID
		p.Role,        // staff role
		p.DisplayName, // display name
		p.Email,       // login email
		s.AccessTTL,   // token lifetime
		s.Issuer,      // issuer
		s.Audience,    // audience
		now,           // current time
	)
	return s.KeyManager.Signer.Sign(claims)
}
