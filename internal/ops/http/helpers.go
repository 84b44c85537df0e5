package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
)

// readJSON decodes the request body into dst. On failure it writes the
// standard invalid_request error and returns false.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		opsdk.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}

// readBodyQuietly decodes the body without writing an error response. Used
// where a bad body is tolerated, such as logout.
func readBodyQuietly(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// actorFromCtx rebuilds the acting staff member from the verified claims.
func actorFromCtx(r *http.Request) service.Actor {
	claims, _ := r.Context().Value(httpx.CtxKeyClaims).(jwtx.Claims)
	return service.Actor{
		ID:          claims.Subject,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
	}
}

// writeStoreError maps the portable store sentinels onto wire errors.
// Anything unrecognised is a server error.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		opsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		opsdk.ErrAlreadyExists.WriteError(w)
	default:
		opsdk.ErrServerError.WriteError(w)
	}
}
