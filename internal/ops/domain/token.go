package domain

import "time"

// TokenPair is what the login and refresh endpoints return: the short-lived
// access token (JWT) and, when requested, the opaque remember token.
type TokenPair struct {
	AccessToken   string        `json:"access_token"`
	RememberToken string        `json:"remember_token,omitempty"`
	TokenType     string        `json:"token_type,omitempty"` // typically "Bearer"
	ExpiresIn     time.Duration `json:"expires_in"`           // seconds until expiry
}

// RememberToken models the stored remember token record in the DB. Only the
// fingerprint is stored; the raw token exists client-side only.
type RememberToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	SessionID string // Session ID (SID) that persists across refreshes
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
