package api

import (
	"context"
	"net/http"

	"github.com/wsapio/wsap-go/client/internal/types"
)

// GetCurrentUser returns the account behind the configured API key.
func GetCurrentUser(ctx context.Context, httpClient HTTPClient, baseURL string) (*types.User, error) {
	raw, err := Do(ctx, httpClient, baseURL, http.MethodGet, "/api/auth/me/", nil, nil)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := Decode(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
