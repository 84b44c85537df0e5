package http

import (
	"errors"
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// AuthHandler serves the login, refresh, and logout endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin godoc
//
//	@Summary		Password login
//	@Description	Verifies the email/password pair and issues a short-lived access token. With remember=true an opaque remember token is issued alongside; it rotates on every refresh.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	opsdk.LoginResponse	"access_token, token_type, expires_in, remember_token?, user"
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Failure		401		{object}	opsdk.ErrorResponse	"Wrong email or password"
//	@Failure		500		{object}	opsdk.ErrorResponse
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req opsdk.LoginRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, profile, err := h.AuthService.Login(ctx, req.Email, req.Password, req.Remember)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			opsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, opsdk.LoginResponse{
		AccessToken:   pair.AccessToken,
		TokenType:     pair.TokenType,
		ExpiresIn:     int(pair.ExpiresIn.Seconds()),
		RememberToken: pair.RememberToken,
		User:          toUserInfoDTO(profile),
	})
}

// HandleRefresh godoc
//
//	@Summary		Redeem a remember token
//	@Description	Rotates the presented remember token and mints a fresh access token. The old remember token is revoked; clients must store the returned one.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.RefreshRequest	true	"Remember token"
//	@Success		200		{object}	opsdk.LoginResponse
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Failure		401		{object}	opsdk.ErrorResponse	"Invalid, expired, or revoked remember token"
//	@Failure		500		{object}	opsdk.ErrorResponse
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req opsdk.RefreshRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.RememberToken == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	pair, profile, err := h.AuthService.Refresh(ctx, req.RememberToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRemember) {
			opsdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("refresh failed", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, opsdk.LoginResponse{
		AccessToken:   pair.AccessToken,
		TokenType:     pair.TokenType,
		ExpiresIn:     int(pair.ExpiresIn.Seconds()),
		RememberToken: pair.RememberToken,
		User:          toUserInfoDTO(profile),
	})
}

// HandleLogout godoc
//
//	@Summary		Logout
//	@Description	Revokes the remember token best-effort. Always succeeds so clients proceed to the login page regardless of server state.
//	@Tags			Auth
//	@Accept			json
//	@Success		204	"Logged out"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req opsdk.LogoutRequest
	// A missing or malformed body is fine; there is just nothing to revoke.
	_ = readBodyQuietly(r, &req)

	h.AuthService.Logout(r.Context(), req.RememberToken)
	w.WriteHeader(http.StatusNoContent)
}
