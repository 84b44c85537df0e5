package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
)

// MenuHandler serves the navigation menu filtered to the caller's role.
// The menu is cosmetic; route middleware enforces the same rules.
//
//	@Summary		Get the navigation menu
//	@Description	Returns the dashboard pages visible to the authenticated role.
//	@Tags			Menu
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.MenuResponse
//	@Failure		401	{object}	opsdk.ErrorResponse
//	@Router			/v1/menu [get].
func MenuHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := httpx.RoleFromCtx(r.Context())

		items := service.MenuFor(role)
		out := make([]opsdk.MenuItem, 0, len(items))
		for _, item := range items {
			out = append(out, opsdk.MenuItem{ID: item.ID, Label: item.Label, Path: item.Path})
		}

		httpx.WriteJSON(w, http.StatusOK, opsdk.MenuResponse{Role: role, Items: out})
	}
}
