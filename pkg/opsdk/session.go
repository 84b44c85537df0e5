package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session represents an authenticated session with automatic token refresh.
// All Session methods automatically handle access token expiration by
// redeeming the remember token when one is held.
type Session struct {
	client *SDKClient

	mu            sync.RWMutex
	accessToken   string
	rememberToken string
	expiresAt     time.Time
	user          UserInfoResponse
}

// newSession creates a new authenticated session from a login response.
func newSession(client *SDKClient, loginResp *LoginResponse) *Session {
	expiresAt := time.Now().Add(time.Duration(loginResp.ExpiresIn) * time.Second)

	// Subtract 30 seconds buffer to refresh before actual expiry
	expiresAt = expiresAt.Add(-30 * time.Second)

	return &Session{
		client:        client,
		accessToken:   loginResp.AccessToken,
		rememberToken: loginResp.RememberToken,
		expiresAt:     expiresAt,
		user:          loginResp.User,
	}
}

// getValidToken returns a valid access token, automatically refreshing if expired.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	// Token expired, need to refresh
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine may have refreshed)
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	// Check if we have a remember token
	if s.rememberToken == "" {
		return "", fmt.Errorf("access token expired and no remember token available")
	}

	// Perform refresh. The remember token rotates on every redemption.
	loginResp, err := s.client.refreshGrant(ctx, s.rememberToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = loginResp.AccessToken
	s.rememberToken = loginResp.RememberToken
	s.expiresAt = time.Now().Add(time.Duration(loginResp.ExpiresIn)*time.Second - 30*time.Second)
	s.user = loginResp.User

	return s.accessToken, nil
}

// AccessToken returns the current access token without checking expiration.
// For most use cases, prefer the Session methods which refresh automatically.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RememberToken returns the current remember token. Callers persisting the
// token must re-read it after any Session call, since redemption rotates it.
func (s *Session) RememberToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rememberToken
}

// User returns the staff identity captured at login or last refresh.
func (s *Session) User() UserInfoResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Role returns the staff role captured at login or last refresh.
func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Role
}

// Logout ends the session and revokes the remember token if one is held.
// The server treats logout as best-effort, so this succeeds even when the
// token was already revoked.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.RLock()
	rememberToken := s.rememberToken
	s.mu.RUnlock()

	body, err := json.Marshal(LogoutRequest{RememberToken: rememberToken})
	if err != nil {
		return fmt.Errorf("failed to encode logout request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/logout", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return err
	}

	if err := checkStatusNoContent(resp); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = ""
	s.rememberToken = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	return nil
}

// GetUserInfo retrieves user information for the authenticated session.
// Automatically refreshes the access token if expired.
func (s *Session) GetUserInfo(ctx context.Context) (*UserInfoResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/userinfo", nil, nil)
	if err != nil {
		return nil, err
	}

	var userInfo UserInfoResponse
	if err := decodeJSON(resp, &userInfo, http.StatusOK); err != nil {
		return nil, err
	}

	return &userInfo, nil
}

// GetMenu retrieves the dashboard pages visible to the session's role.
func (s *Session) GetMenu(ctx context.Context) (*MenuResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/menu", nil, nil)
	if err != nil {
		return nil, err
	}

	var menu MenuResponse
	if err := decodeJSON(resp, &menu, http.StatusOK); err != nil {
		return nil, err
	}

	return &menu, nil
}
