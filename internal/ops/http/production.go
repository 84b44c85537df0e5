package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// ProductionHandler serves the production log CRUD surface.
type ProductionHandler struct {
	ProductionService *service.ProductionService
}

// HandleList godoc
//
//	@Summary		List production log entries
//	@Description	Returns production records, newest tanggal first, optionally narrowed by date range, process type, and shift.
//	@Tags			Production
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date_from		query		string	false	"Inclusive lower bound on tanggal (YYYY-MM-DD)"
//	@Param			date_to			query		string	false	"Inclusive upper bound on tanggal (YYYY-MM-DD)"
//	@Param			process_type	query		string	false	"Exact match on jenis_proses"
//	@Param			shift			query		string	false	"Exact match on shift"
//	@Success		200				{object}	opsdk.ListProductionResponse
//	@Router			/v1/production [get].
func (h *ProductionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.ProductionFilter{
		DateFrom:    q.Get("date_from"),
		DateTo:      q.Get("date_to"),
		ProcessType: q.Get("process_type"),
		Shift:       q.Get("shift"),
	}

	records, err := h.ProductionService.ListProduction(ctx, filter)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list production records", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.ProductionRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, toProductionDTO(rec))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListProductionResponse{Records: out})
}

// HandleCreate godoc
//
//	@Summary		Create a production log entry
//	@Tags			Production
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.ProductionRequest	true	"Production record"
//	@Success		201		{object}	opsdk.ProductionRecord
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Router			/v1/production [post].
func (h *ProductionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.ProductionRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Tanggal == "" || req.PartAssy == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	rec, err := h.ProductionService.CreateProduction(r.Context(), actorFromCtx(r), fromProductionRequest(req))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProductionDTO(rec))
}

// HandleUpdate godoc
//
//	@Summary		Update a production log entry
//	@Tags			Production
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Record ID"
//	@Param			body	body		opsdk.ProductionRequest	true	"Production record"
//	@Success		200		{object}	opsdk.ProductionRecord
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/production/{id} [put].
func (h *ProductionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.ProductionRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Tanggal == "" || req.PartAssy == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	rec := fromProductionRequest(req)
	rec.ID = r.PathValue("id")

	updated, err := h.ProductionService.UpdateProduction(r.Context(), actorFromCtx(r), rec)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductionDTO(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete a production log entry
//	@Tags			Production
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Record ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	opsdk.ErrorResponse
//	@Router			/v1/production/{id} [delete].
func (h *ProductionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProductionService.DeleteProduction(r.Context(), actorFromCtx(r), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
