package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/wsapio/wsap-go/client/internal/types"
)

// ListEntities retrieves entities, with filters passed verbatim as query
// parameters. The endpoint may answer with a bare array or a paginated
// {count, results} envelope; both decode to the same slice.
func ListEntities(ctx context.Context, httpClient HTTPClient, baseURL string, filters map[string]string) ([]types.Entity, error) {
	var query url.Values
	if len(filters) > 0 {
		query = url.Values{}
		for k, v := range filters {
			query.Set(k, v)
		}
	}
	raw, err := Do(ctx, httpClient, baseURL, http.MethodGet, "/api/entities/", query, nil)
	if err != nil {
		return nil, err
	}
	return decodeEntityList(raw)
}

// GetEntity retrieves a single entity by ID or slug.
func GetEntity(ctx context.Context, httpClient HTTPClient, baseURL, idOrSlug string) (*types.Entity, error) {
	raw, err := Do(ctx, httpClient, baseURL, http.MethodGet, "/api/entities/"+url.PathEscape(idOrSlug)+"/", nil, nil)
	if err != nil {
		return nil, err
	}
	var e types.Entity
	if err := Decode(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEntity registers a new entity. The caller-supplied body is sent as-is;
// the server is the authority on which fields it accepts.
func CreateEntity(ctx context.Context, httpClient HTTPClient, baseURL string, data any) (*types.Entity, error) {
	raw, err := Do(ctx, httpClient, baseURL, http.MethodPost, "/api/entities/", nil, data)
	if err != nil {
		return nil, err
	}
	var e types.Entity
	if err := Decode(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEntity replaces an entity's representation.
func UpdateEntity(ctx context.Context, httpClient HTTPClient, baseURL, idOrSlug string, data any) (*types.Entity, error) {
	raw, err := Do(ctx, httpClient, baseURL, http.MethodPut, "/api/entities/"+url.PathEscape(idOrSlug)+"/", nil, data)
	if err != nil {
		return nil, err
	}
	var e types.Entity
	if err := Decode(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEntity removes an entity. Returns nil on success; the backend answers
// with an empty body.
func DeleteEntity(ctx context.Context, httpClient HTTPClient, baseURL, idOrSlug string) error {
	_, err := Do(ctx, httpClient, baseURL, http.MethodDelete, "/api/entities/"+url.PathEscape(idOrSlug)+"/", nil, nil)
	return err
}

func decodeEntityList(raw json.RawMessage) ([]types.Entity, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	// Bare array first; fall back to the page envelope.
	var list []types.Entity
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var page types.ListEntitiesPage
	if err := Decode(raw, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
