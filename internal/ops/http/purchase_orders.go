package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// PurchaseOrdersHandler serves the purchase order CRUD surface.
type PurchaseOrdersHandler struct {
	PurchaseOrderService *service.PurchaseOrderService
}

// HandleList godoc
//
//	@Summary		List purchase orders
//	@Description	Returns purchase orders, newest po_date first. The date range only applies when both bounds are given.
//	@Tags			PurchaseOrders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			start_date	query		string	false	"Inclusive lower bound on po_date (YYYY-MM-DD)"
//	@Param			end_date	query		string	false	"Inclusive upper bound on po_date (YYYY-MM-DD)"
//	@Param			created_by	query		string	false	"Filter by creating user ID"
//	@Param			sales_name	query		string	false	"Case-insensitive substring match on sales name"
//	@Success		200			{object}	opsdk.ListPurchaseOrdersResponse
//	@Router			/v1/purchase-orders [get].
func (h *PurchaseOrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := domain.PurchaseOrderFilter{
		StartDate:       q.Get("start_date"),
		EndDate:         q.Get("end_date"),
		CreatedByUserID: q.Get("created_by"),
		SalesName:       q.Get("sales_name"),
	}

	orders, err := h.PurchaseOrderService.ListPurchaseOrders(ctx, filter)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list purchase orders", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.PurchaseOrder, 0, len(orders))
	for _, po := range orders {
		out = append(out, toPurchaseOrderDTO(po))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListPurchaseOrdersResponse{PurchaseOrders: out})
}

// HandleCreate godoc
//
//	@Summary		Create a purchase order
//	@Description	Creates a purchase order stamped with the authenticated user as creator. Directors are notified.
//	@Tags			PurchaseOrders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.PurchaseOrderRequest	true	"Purchase order"
//	@Success		201		{object}	opsdk.PurchaseOrder
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Router			/v1/purchase-orders [post].
func (h *PurchaseOrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.PurchaseOrderRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.NoPO == "" || req.PODate == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	po, err := h.PurchaseOrderService.CreatePurchaseOrder(r.Context(), actorFromCtx(r), fromPurchaseOrderRequest(req))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPurchaseOrderDTO(po))
}

// HandleUpdate godoc
//
//	@Summary		Update a purchase order
//	@Description	Updates the order fields; the original creator attribution is preserved. Directors are notified.
//	@Tags			PurchaseOrders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Purchase order ID"
//	@Param			body	body		opsdk.PurchaseOrderRequest	true	"Purchase order"
//	@Success		200		{object}	opsdk.PurchaseOrder
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/purchase-orders/{id} [put].
func (h *PurchaseOrdersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.PurchaseOrderRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.NoPO == "" || req.PODate == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	po := fromPurchaseOrderRequest(req)
	po.ID = r.PathValue("id")

	updated, err := h.PurchaseOrderService.UpdatePurchaseOrder(r.Context(), actorFromCtx(r), po)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPurchaseOrderDTO(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete a purchase order
//	@Tags			PurchaseOrders
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Purchase order ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	opsdk.ErrorResponse
//	@Router			/v1/purchase-orders/{id} [delete].
func (h *PurchaseOrdersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.PurchaseOrderService.DeletePurchaseOrder(r.Context(), actorFromCtx(r), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
