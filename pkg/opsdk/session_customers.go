package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListCustomers retrieves all customers, newest first.
func (s *Session) ListCustomers(ctx context.Context) ([]Customer, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/customers", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListCustomersResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Customers, nil
}

// GetCustomerByName retrieves a single customer by a case-insensitive
// substring match on the customer name.
func (s *Session) GetCustomerByName(ctx context.Context, name string) (*Customer, error) {
	path := "/v1/customers/search?name=" + url.QueryEscape(name)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeJSON(resp, &customer, http.StatusOK); err != nil {
		return nil, err
	}

	return &customer, nil
}

// CreateCustomer creates a customer record. The server notifies directors.
func (s *Session) CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/customers", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeJSON(resp, &customer, http.StatusCreated); err != nil {
		return nil, err
	}

	return &customer, nil
}

// UpdateCustomer updates a customer record. The server notifies directors.
func (s *Session) UpdateCustomer(ctx context.Context, id string, req CustomerRequest) (*Customer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/customers/"+url.PathEscape(id), bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeJSON(resp, &customer, http.StatusOK); err != nil {
		return nil, err
	}

	return &customer, nil
}

// DeleteCustomer removes a customer record. The server notifies directors.
func (s *Session) DeleteCustomer(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/customers/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
