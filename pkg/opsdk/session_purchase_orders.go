package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListPurchaseOrders retrieves purchase orders, newest po_date first,
// optionally narrowed by the filter.
func (s *Session) ListPurchaseOrders(ctx context.Context, filter PurchaseOrderFilter) ([]PurchaseOrder, error) {
	q := url.Values{}
	if filter.StartDate != "" {
		q.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("end_date", filter.EndDate)
	}
	if filter.CreatedByUserID != "" {
		q.Set("created_by", filter.CreatedByUserID)
	}
	if filter.SalesName != "" {
		q.Set("sales_name", filter.SalesName)
	}

	path := "/v1/purchase-orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListPurchaseOrdersResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.PurchaseOrders, nil
}

// CreatePurchaseOrder creates a purchase order. The server stamps the
// creator attribution from the session and notifies directors.
func (s *Session) CreatePurchaseOrder(ctx context.Context, req PurchaseOrderRequest) (*PurchaseOrder, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/purchase-orders", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var po PurchaseOrder
	if err := decodeJSON(resp, &po, http.StatusCreated); err != nil {
		return nil, err
	}

	return &po, nil
}

// UpdatePurchaseOrder updates a purchase order. The original creator
// attribution is kept. The server notifies directors.
func (s *Session) UpdatePurchaseOrder(ctx context.Context, id string, req PurchaseOrderRequest) (*PurchaseOrder, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/purchase-orders/"+url.PathEscape(id), bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var po PurchaseOrder
	if err := decodeJSON(resp, &po, http.StatusOK); err != nil {
		return nil, err
	}

	return &po, nil
}

// DeletePurchaseOrder removes a purchase order. The server notifies directors.
func (s *Session) DeletePurchaseOrder(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/purchase-orders/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
