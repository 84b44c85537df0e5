package opsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Reference data - read-only lookups that feed form dropdowns.

// ListMachines retrieves all machine records, newest first.
func (s *Session) ListMachines(ctx context.Context) ([]Machine, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/machines", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListMachinesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Machines, nil
}

// ListOperators retrieves all operator records, newest first.
func (s *Session) ListOperators(ctx context.Context) ([]Operator, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/operators", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListOperatorsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Operators, nil
}

// distinctValues fetches a deduplicated dropdown list for the named field.
func (s *Session) distinctValues(ctx context.Context, field string) ([]string, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/reference/"+field, nil, nil)
	if err != nil {
		return nil, err
	}

	var list DistinctValuesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Values, nil
}

// GetDistinctOperators returns the unique operator names.
func (s *Session) GetDistinctOperators(ctx context.Context) ([]string, error) {
	return s.distinctValues(ctx, "operators")
}

// GetDistinctMachines returns the unique machine names.
func (s *Session) GetDistinctMachines(ctx context.Context) ([]string, error) {
	return s.distinctValues(ctx, "machines")
}

// GetDistinctQCLines returns the unique QC lines seen in production data.
func (s *Session) GetDistinctQCLines(ctx context.Context) ([]string, error) {
	return s.distinctValues(ctx, "qc-lines")
}

// GetDistinctPartAssy returns the unique part assys seen in production data.
func (s *Session) GetDistinctPartAssy(ctx context.Context) ([]string, error) {
	return s.distinctValues(ctx, "part-assy")
}

// GetDistinctPartNames returns the unique part names seen in production data.
func (s *Session) GetDistinctPartNames(ctx context.Context) ([]string, error) {
	return s.distinctValues(ctx, "part-names")
}

// GetDistinctProcesses returns the unique processes seen in production data.
func (s *Session) GetDistinctProcesses(ctx context.Context) ([]string, error) {
	return s.distinctValues(ctx, "processes")
}

// GetPartDetailsByPartAssy resolves the part name and process for a part
// assy from existing production data, used to autofill the entry form.
func (s *Session) GetPartDetailsByPartAssy(ctx context.Context, partAssy string) (*PartDetailsResponse, error) {
	path := "/v1/reference/part-details?part_assy=" + url.QueryEscape(partAssy)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var details PartDetailsResponse
	if err := decodeJSON(resp, &details, http.StatusOK); err != nil {
		return nil, err
	}

	return &details, nil
}
