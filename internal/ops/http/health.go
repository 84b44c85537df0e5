package http

import (
	"net/http"
	"time"

	"github.com/prakarsateknik/opsdesk/internal/ops/store"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/jwtx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// LivezHandler reports process liveness.
//
//	@Summary		Liveness probe
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	opsdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(version string, startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, opsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	}
}

// ReadyzHandler reports whether the service can take traffic: the database
// answers a ping and the token signer holds a key.
//
//	@Summary		Readiness probe
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	opsdk.HealthResponse
//	@Failure		503	{object}	opsdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store, keys *jwtx.KeySet, version string, startTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		checks := opsdk.HealthChecks{Database: "ok", Signer: "ok"}
		status := http.StatusOK

		if err := st.Ping(ctx); err != nil {
			slogx.FromContext(ctx).Warn("readiness: database ping failed", "err", err)
			checks.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if !keys.IsReady() {
			checks.Signer = "unavailable"
			status = http.StatusServiceUnavailable
		}

		body := opsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  &checks,
		}
		if status != http.StatusOK {
			body.Status = "degraded"
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, status, body)
	}
}

// JWKSHandler publishes the public signing keys so other services can
// verify access tokens offline.
//
//	@Summary		JSON Web Key Set
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	jwtx.JWKS
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	}
}
