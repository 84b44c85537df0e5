package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the opsdesk dashboard service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new dashboard service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with email and password and returns a Session.
// When remember is true the server also issues a remember token, which the
// Session uses to silently refresh expired access tokens.
func (c *SDKClient) Login(ctx context.Context, email, password string, remember bool) (*Session, error) {
	body, err := json.Marshal(LoginRequest{
		Email:    email,
		Password: password,
		Remember: remember,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &loginResp), nil
}

// AuthenticateWithRememberToken creates a Session from a stored remember
// token. The token is rotated server-side, so the Session holds the new one.
func (c *SDKClient) AuthenticateWithRememberToken(ctx context.Context, rememberToken string) (*Session, error) {
	loginResp, err := c.refreshGrant(ctx, rememberToken)
	if err != nil {
		return nil, err
	}

	return newSession(c, loginResp), nil
}

// NewSessionFromTokens creates a Session from existing tokens. This is
// useful when tokens were stored from a previous authentication. The
// session will still auto-refresh when the access token expires, provided
// a remember token is given.
func (c *SDKClient) NewSessionFromTokens(accessToken, rememberToken string, expiresIn int) *Session {
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // 30 second buffer

	return &Session{
		client:        c,
		accessToken:   accessToken,
		rememberToken: rememberToken,
		expiresAt:     expiresAt,
	}
}

// refreshGrant exchanges a remember token for a fresh access token.
func (c *SDKClient) refreshGrant(ctx context.Context, rememberToken string) (*LoginResponse, error) {
	body, err := json.Marshal(RefreshRequest{RememberToken: rememberToken})
	if err != nil {
		return nil, fmt.Errorf("failed to encode refresh request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/refresh", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &loginResp, nil
}
