package api

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/wsapio/wsap-go/client/internal/errors"
	"github.com/wsapio/wsap-go/client/internal/types"
)

// DefaultVerificationMethod is used when the caller does not name one.
const DefaultVerificationMethod = "dns_txt"

// InitiateVerification starts a domain-ownership challenge and returns the
// challenge material (token, TXT record name/value). An empty method selects
// the DNS TXT challenge.
func InitiateVerification(ctx context.Context, httpClient HTTPClient, baseURL, domain, method string) (*types.Verification, error) {
	if method == "" {
		method = DefaultVerificationMethod
	}
	req := types.InitiateVerificationRequest{Domain: domain, Method: method}
	raw, err := Do(ctx, httpClient, baseURL, http.MethodPost, "/api/verification/initiate/", nil, req)
	if err != nil {
		return nil, err
	}
	var v types.Verification
	if err := Decode(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// VerifyDomain asks the server to check the pending challenge and reports the
// result as a plain boolean. It is meant to be probed from polling loops, so
// an *APIError carrying a received status (5xx, 429, ...) folds to false
// rather than propagating. Failures where no response arrived (StatusCode 0),
// authentication failures and 404s still propagate: those are not "not
// verified yet", they are broken calls.
func VerifyDomain(ctx context.Context, httpClient HTTPClient, baseURL, domain string) (bool, error) {
	req := types.VerifyDomainRequest{Domain: domain}
	raw, err := Do(ctx, httpClient, baseURL, http.MethodPost, "/api/verification/verify/", nil, req)
	if err != nil {
		var ae *apierr.APIError
		if errors.As(err, &ae) && ae.StatusCode > 0 {
			return false, nil
		}
		return false, err
	}
	var resp types.VerifyDomainResponse
	if err := Decode(raw, &resp); err != nil {
		return false, err
	}
	return resp.Verified, nil
}
