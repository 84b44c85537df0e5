package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Staff operations - Admin/Direktur only, enforced server-side.

// ListStaff retrieves all staff profiles.
func (s *Session) ListStaff(ctx context.Context) ([]Profile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/staff", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListStaffResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Staff, nil
}

// CreateStaff creates a new staff account. When the request omits a
// password the response carries the generated initial password exactly once.
func (s *Session) CreateStaff(ctx context.Context, req CreateStaffRequest) (*CreateStaffResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/staff", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var created CreateStaffResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateStaff updates a staff account's display name, role, or password.
func (s *Session) UpdateStaff(ctx context.Context, id string, req UpdateStaffRequest) (*Profile, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/v1/staff/"+url.PathEscape(id), bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// DeleteStaff removes a staff account.
func (s *Session) DeleteStaff(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/staff/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// ListSales retrieves the profiles with the Sales role, used to populate
// the sales dropdown on the purchase order form.
func (s *Session) ListSales(ctx context.Context) ([]SalesOption, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/sales", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListSalesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Sales, nil
}
