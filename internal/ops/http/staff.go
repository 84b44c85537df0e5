package http

import (
	"errors"
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// StaffHandler serves staff account management for admins and directors.
type StaffHandler struct {
	ProfileService *service.ProfileService
}

// HandleList godoc
//
//	@Summary		List staff accounts
//	@Tags			Staff
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.ListStaffResponse
//	@Failure		401	{object}	opsdk.ErrorResponse
//	@Failure		403	{object}	opsdk.ErrorResponse
//	@Router			/v1/staff [get].
func (h *StaffHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staff, err := h.ProfileService.ListStaff(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list staff", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.Profile, 0, len(staff))
	for _, p := range staff {
		out = append(out, toProfileDTO(p))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListStaffResponse{Staff: out})
}

// HandleCreate godoc
//
//	@Summary		Create a staff account
//	@Description	Creates a staff account with the given role. Without a password the server generates one and returns it once in initial_password.
//	@Tags			Staff
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		opsdk.CreateStaffRequest	true	"New staff account"
//	@Success		201		{object}	opsdk.CreateStaffResponse
//	@Failure		400		{object}	opsdk.ErrorResponse	"Malformed request or unknown role"
//	@Failure		409		{object}	opsdk.ErrorResponse	"Email already registered"
//	@Router			/v1/staff [post].
func (h *StaffHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req opsdk.CreateStaffRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.DisplayName == "" || req.Role == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	profile, initialPassword, err := h.ProfileService.CreateStaff(ctx, req.Email, req.DisplayName, req.Role, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			opsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("failed to create staff", "err", err)
		writeStoreError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, opsdk.CreateStaffResponse{
		Profile:         toProfileDTO(profile),
		InitialPassword: initialPassword,
	})
}

// HandleUpdate godoc
//
//	@Summary		Update a staff account
//	@Description	Changes display name and/or role; a new password revokes the member's remember tokens. Empty fields are left as-is.
//	@Tags			Staff
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Profile ID"
//	@Param			body	body		opsdk.UpdateStaffRequest	true	"Fields to change"
//	@Success		200		{object}	opsdk.Profile
//	@Failure		400		{object}	opsdk.ErrorResponse
//	@Failure		404		{object}	opsdk.ErrorResponse
//	@Router			/v1/staff/{id} [patch].
func (h *StaffHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	id := r.PathValue("id")

	var req opsdk.UpdateStaffRequest
	if !readJSON(w, r, &req) {
		return
	}

	current, err := h.ProfileService.GetProfileByID(ctx, id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	displayName := current.DisplayName
	if req.DisplayName != "" {
		displayName = req.DisplayName
	}
	role := current.Role
	if req.Role != "" {
		role = req.Role
	}

	updated, err := h.ProfileService.UpdateStaff(ctx, id, displayName, role)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			opsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		log.Error("failed to update staff", "profile_id", id, "err", err)
		writeStoreError(w, err)
		return
	}

	if req.Password != "" {
		if err := h.ProfileService.ChangePassword(ctx, id, req.Password); err != nil {
			log.Error("failed to change password", "profile_id", id, "err", err)
			writeStoreError(w, err)
			return
		}
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileDTO(updated))
}

// HandleDelete godoc
//
//	@Summary		Delete a staff account
//	@Description	Removes the account along with its remember tokens and notifications.
//	@Tags			Staff
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Profile ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	opsdk.ErrorResponse
//	@Router			/v1/staff/{id} [delete].
func (h *StaffHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.ProfileService.DeleteStaff(ctx, id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListSales godoc
//
//	@Summary		List sales staff
//	@Description	Returns Sales-role profiles for the purchase order form's sales dropdown.
//	@Tags			Staff
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.ListSalesResponse
//	@Router			/v1/sales [get].
func (h *StaffHandler) HandleListSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := h.ProfileService.ListSales(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list sales profiles", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.SalesOption, 0, len(sales))
	for _, p := range sales {
		out = append(out, opsdk.SalesOption{ID: p.ID, DisplayName: p.DisplayName})
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListSalesResponse{Sales: out})
}
