package opsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListItems retrieves all items, newest first.
func (s *Session) ListItems(ctx context.Context) ([]Item, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/items", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListItemsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Items, nil
}

// GetItemByName retrieves a single item by a case-insensitive substring
// match on the part assy name.
func (s *Session) GetItemByName(ctx context.Context, name string) (*Item, error) {
	path := "/v1/items/search?name=" + url.QueryEscape(name)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := decodeJSON(resp, &item, http.StatusOK); err != nil {
		return nil, err
	}

	return &item, nil
}

// GetItemByPartAssyName retrieves a single item by exact part assy name.
func (s *Session) GetItemByPartAssyName(ctx context.Context, partAssyName string) (*Item, error) {
	path := "/v1/items/by-part-assy?name=" + url.QueryEscape(partAssyName)
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := decodeJSON(resp, &item, http.StatusOK); err != nil {
		return nil, err
	}

	return &item, nil
}

// CreateItem creates an item record. The server notifies directors.
func (s *Session) CreateItem(ctx context.Context, req ItemRequest) (*Item, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/items", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := decodeJSON(resp, &item, http.StatusCreated); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItem updates an item record. The server notifies directors.
func (s *Session) UpdateItem(ctx context.Context, id string, req ItemRequest) (*Item, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/items/"+url.PathEscape(id), bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var item Item
	if err := decodeJSON(resp, &item, http.StatusOK); err != nil {
		return nil, err
	}

	return &item, nil
}

// DeleteItem removes an item record. The server notifies directors.
func (s *Session) DeleteItem(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/items/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
