package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// CustomersHandler serves the customer master CRUD surface.
type CustomersHandler struct {
	CustomerService *service.CustomerService
}

// HandleList godoc
//
//	@Summary		List customers
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.ListCustomersResponse
//	@Router			/v1/customers [get].
func (h *CustomersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.CustomerService.ListCustomers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list customers", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerDTO(c))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListCustomersResponse{Customers: out})
}

// HandleSearch godoc
//
//	@Summary		Find a customer by name
//	@Description	Case-insensitive substring match on customer_name; returns the single best match.
//	@Tags			Customers
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	query		string	true	"Name to search for"
//	@Success		200		{object}	opsdk.Customer
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/customers/search [get].
func (h *CustomersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	c, err := h.CustomerService.FindCustomerByName(r.Context(), name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCustomerDTO(c))
}

// HandleCreate godoc
//
//	@Summary		Create a customer
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.CustomerRequest	true	"Customer"
//	@Success		201		{object}	opsdk.Customer
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Router			/v1/customers [post].
func (h *CustomersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.CustomerRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CustomerName == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	c, err := h.CustomerService.CreateCustomer(r.Context(), actorFromCtx(r), fromCustomerRequest(req))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCustomerDTO(c))
}

// HandleUpdate godoc
//
//	@Summary		Update a customer
//	@Tags			Customers
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Customer ID"
//	@Param			body	body		opsdk.CustomerRequest	true	"Customer"
//	@Success		200		{object}	opsdk.Customer
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/customers/{id} [put].
func (h *CustomersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req opsdk.CustomerRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.CustomerName == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	c := fromCustomerRequest(req)
	c.ID = r.PathValue("id")

	updated, err := h.CustomerService.UpdateCustomer(r.Context(), actorFromCtx(r), c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCustomerDTO(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete a customer
//	@Tags			Customers
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Customer ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	opsdk.ErrorResponse
//	@Router			/v1/customers/{id} [delete].
func (h *CustomersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CustomerService.DeleteCustomer(r.Context(), actorFromCtx(r), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
