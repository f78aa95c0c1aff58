package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/wsapio/wsap-go/client/internal/types"
)

// GenerateWSAP produces a disclosure document for an entity at the given
// disclosure level. The level is upper-cased before transmission so callers
// may pass "standard" and "STANDARD" interchangeably; empty selects STANDARD.
func GenerateWSAP(ctx context.Context, httpClient HTTPClient, baseURL, entityID, disclosureLevel string) (*types.WSAPData, error) {
	if disclosureLevel == "" {
		disclosureLevel = types.DisclosureStandard
	}
	req := types.GenerateWSAPRequest{
		EntityID:        entityID,
		DisclosureLevel: strings.ToUpper(disclosureLevel),
	}
	raw, err := Do(ctx, httpClient, baseURL, http.MethodPost, "/api/wsap/generate/", nil, req)
	if err != nil {
		return nil, err
	}
	var data types.WSAPData
	if err := Decode(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FetchWSAP retrieves the published disclosure document for a domain. The
// endpoint is public on the server side but the client still authenticates.
func FetchWSAP(ctx context.Context, httpClient HTTPClient, baseURL, domain string) (*types.WSAPData, error) {
	raw, err := Do(ctx, httpClient, baseURL, http.MethodGet, "/api/wsap/public/"+url.PathEscape(domain)+"/", nil, nil)
	if err != nil {
		return nil, err
	}
	var data types.WSAPData
	if err := Decode(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
