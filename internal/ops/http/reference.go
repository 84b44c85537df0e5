package http

import (
	"net/http"

	"github.com/prakarsateknik/opsdesk/internal/ops/service"
	"github.com/prakarsateknik/opsdesk/pkg/httpx"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
	"github.com/prakarsateknik/opsdesk/pkg/slogx"
)

// ReferenceHandler serves the dropdown data behind the production entry
// form: machine and operator lists plus distinct historical values.
type ReferenceHandler struct {
	ReferenceService *service.ReferenceService
}

// HandleListMachines godoc
//
//	@Summary		List machines
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.ListMachinesResponse
//	@Router			/v1/machines [get].
func (h *ReferenceHandler) HandleListMachines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	machines, err := h.ReferenceService.ListMachines(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list machines", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.Machine, 0, len(machines))
	for _, m := range machines {
		out = append(out, toMachineDTO(m))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListMachinesResponse{Machines: out})
}

// HandleListOperators godoc
//
//	@Summary		List operators
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.ListOperatorsResponse
//	@Router			/v1/operators [get].
func (h *ReferenceHandler) HandleListOperators(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	operators, err := h.ReferenceService.ListOperators(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list operators", "err", err)
		opsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]opsdk.Operator, 0, len(operators))
	for _, o := range operators {
		out = append(out, toOperatorDTO(o))
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.ListOperatorsResponse{Operators: out})
}

// distinctHandler adapts a distinct-values lookup into a handler that
// writes the shared DistinctValuesResponse shape.
func distinctHandler(fetch func(r *http.Request) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := fetch(r)
		if err != nil {
			slogx.FromContext(r.Context()).Error("failed to fetch distinct values", "path", r.URL.Path, "err", err)
			opsdk.ErrServerError.WriteError(w)
			return
		}
		if values == nil {
			values = []string{}
		}
		httpx.WriteJSON(w, http.StatusOK, opsdk.DistinctValuesResponse{Values: values})
	}
}

// HandleDistinctOperators godoc
//
//	@Summary		List distinct operator names
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.DistinctValuesResponse
//	@Router			/v1/reference/operators [get].
func (h *ReferenceHandler) HandleDistinctOperators(w http.ResponseWriter, r *http.Request) {
	distinctHandler(func(r *http.Request) ([]string, error) {
		return h.ReferenceService.DistinctOperators(r.Context())
	})(w, r)
}

// HandleDistinctMachines godoc
//
//	@Summary		List distinct machine names
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.DistinctValuesResponse
//	@Router			/v1/reference/machines [get].
func (h *ReferenceHandler) HandleDistinctMachines(w http.ResponseWriter, r *http.Request) {
	distinctHandler(func(r *http.Request) ([]string, error) {
		return h.ReferenceService.DistinctMachines(r.Context())
	})(w, r)
}

// HandleDistinctQCLines godoc
//
//	@Summary		List distinct QC lines
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.DistinctValuesResponse
//	@Router			/v1/reference/qc-lines [get].
func (h *ReferenceHandler) HandleDistinctQCLines(w http.ResponseWriter, r *http.Request) {
	distinctHandler(func(r *http.Request) ([]string, error) {
		return h.ReferenceService.DistinctQCLines(r.Context())
	})(w, r)
}

// HandleDistinctPartAssy godoc
//
//	@Summary		List distinct part assys
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.DistinctValuesResponse
//	@Router			/v1/reference/part-assy [get].
func (h *ReferenceHandler) HandleDistinctPartAssy(w http.ResponseWriter, r *http.Request) {
	distinctHandler(func(r *http.Request) ([]string, error) {
		return h.ReferenceService.DistinctPartAssy(r.Context())
	})(w, r)
}

// HandleDistinctPartNames godoc
//
//	@Summary		List distinct part names
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.DistinctValuesResponse
//	@Router			/v1/reference/part-names [get].
func (h *ReferenceHandler) HandleDistinctPartNames(w http.ResponseWriter, r *http.Request) {
	distinctHandler(func(r *http.Request) ([]string, error) {
		return h.ReferenceService.DistinctPartNames(r.Context())
	})(w, r)
}

// HandleDistinctProcesses godoc
//
//	@Summary		List distinct processes
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	opsdk.DistinctValuesResponse
//	@Router			/v1/reference/processes [get].
func (h *ReferenceHandler) HandleDistinctProcesses(w http.ResponseWriter, r *http.Request) {
	distinctHandler(func(r *http.Request) ([]string, error) {
		return h.ReferenceService.DistinctProcesses(r.Context())
	})(w, r)
}

// HandlePartDetails godoc
//
//	@Summary		Resolve part details for a part assy
//	@Description	Resolves the part name and process from the item master, falling back to the latest production record with that assy.
//	@Tags			Reference
//	@Security		BearerAuth
//	@Produce		json
//	@Param			part_assy	query		string	true	"Part assy name"
//	@Success		200			{object}	opsdk.PartDetailsResponse
//	@Failure		404			{object}	opsdk.ErrorResponse
//	@Router			/v1/reference/part-details [get].
func (h *ReferenceHandler) HandlePartDetails(w http.ResponseWriter, r *http.Request) {
	partAssy := r.URL.Query().Get("part_assy")
	if partAssy == "" {
		opsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	details, err := h.ReferenceService.GetPartDetailsByPartAssy(r.Context(), partAssy)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, opsdk.PartDetailsResponse{
		PartName: details.PartName,
		Process:  details.Process,
	})
}
