package api

import (
	"context"
	"net/http"

	"github.com/wsapio/wsap-go/client/internal/types"
)

// HealthCheck reports service liveness.
func HealthCheck(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.Health, error) {
	raw, err := Do(ctx, httpClient, baseURL, http.MethodGet, "/api/health/", nil, nil)
	if err != nil {
		return nil, err
	}
	var h types.Health
	if err := Decode(raw, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
