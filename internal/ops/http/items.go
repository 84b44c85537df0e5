package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// ItemsHandler serves the item master CRUD surface.
type ItemsHandler struct {
	ItemService *service.ItemService
}

// HandleList godoc
//
//	@Summary		List items
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.ListItemsResponse
//	@Router			/v1/items [get].
func (h *ItemsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.ItemService.ListItems(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list items", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.Item, 0, len(items))
	for _, i := range items {
		out = append(out, toItemDTO(i))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListItemsResponse{Items: out})
}

// HandleSearch godoc
//
//	@Summary		Find an item by name
//	@Description	Case-insensitive substring match on part_assy_name; returns the single best match.
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	query		string	true	"Name to search for"
//	@Success		200		{object}	opsdk.Item
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/items/search [get].
func (h *ItemsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	i, err := h.ItemService.FindItemByName(r.Context(), name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItemDTO(i))
}

// HandleByPartAssy godoc
//
//	@Summary		Get an item by exact part assy name
//	@Description	Exact match lookup used by the production entry form to autofill part name and process.
//	@Tags			Items
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	query		string	true	"Part assy name"
//	@Success		200		{object}	opsdk.Item
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/items/by-part-assy [get].
func (h *ItemsHandler) HandleByPartAssy(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	i, err := h.ItemService.GetItemByPartAssyName(r.Context(), name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItemDTO(i))
}

// HandleCreate godoc
//
//	@Summary		Create an item
//	@Tags			Items
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.ItemRequest	true	"Item"
//	@Success		201		{object}	opsdk.Item
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Router			/v1/items [post].
func (h *ItemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.ItemRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.PartAssyName == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	i, err := h.ItemService.CreateItem(r.Context(), actorFromCtx(r), fromItemRequest(req))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toItemDTO(i))
}

// HandleUpdate godoc
//
//	@Summary		Update an item
//	@Tags			Items
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			body	body		opsdk.ItemRequest	true	"Item"
//	@Success		200		{object}	opsdk.Item
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/items/{id} [put].
func (h *ItemsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.ItemRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.PartAssyName == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	i := fromItemRequest(req)
	i.ID = r.PathValue("id")

	updated, err := h.ItemService.UpdateItem(r.Context(), actorFromCtx(r), i)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItemDTO(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete an item
//	@Tags			Items
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Item ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	opsdk.ErrorResponse
//	@Router			/v1/items/{id} [delete].
func (h *ItemsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ItemService.DeleteItem(r.Context(), actorFromCtx(r), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
