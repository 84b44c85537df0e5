package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

type UserInfoHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP handles the userinfo endpoint.
//
//	@Summary		Get the authenticated staff member
//	@Description	Returns the current profile: id, email, display name, and role.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.UserInfoResponse
//	@Failure		401	{object}	opsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	opsdk.ErrorResponse
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		opsdk.ErrInvalidToken.WriteError(w)
		return
	}

	profile, err := h.ProfileService.GetProfileByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load profile", "user_id", userID, "err", err)
		opsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserInfoDTO(profile))
}
