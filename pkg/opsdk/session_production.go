package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListProduction retrieves production log entries, newest tanggal first,
// optionally narrowed by the filter.
func (s *Session) ListProduction(ctx context.Context, filter ProductionFilter) ([]ProductionRecord, error) {
	q := url.Values{}
	if filter.DateFrom != "" {
		q.Set("date_from", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q.Set("date_to", filter.DateTo)
	}
	if filter.ProcessType != "" {
		q.Set("process_type", filter.ProcessType)
	}
	if filter.Shift != "" {
		q.Set("shift", filter.Shift)
	}

	path := "/v1/production"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListProductionResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Records, nil
}

// CreateProduction creates a production log entry. The server notifies
// directors.
func (s *Session) CreateProduction(ctx context.Context, req ProductionRequest) (*ProductionRecord, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/production", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var record ProductionRecord
	if err := decodeJSON(resp, &record, http.StatusCreated); err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateProduction updates a production log entry. The server notifies
// directors.
func (s *Session) UpdateProduction(ctx context.Context, id string, req ProductionRequest) (*ProductionRecord, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/production/"+url.PathEscape(id), bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var record ProductionRecord
	if err := decodeJSON(resp, &record, http.StatusOK); err != nil {
		return nil, err
	}

	return &record, nil
}

// DeleteProduction removes a production log entry. The server notifies
// directors.
func (s *Session) DeleteProduction(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/production/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
