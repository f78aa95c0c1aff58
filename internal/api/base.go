// Package api maps each remote WSAP operation onto the shared request
// primitive. Every function takes the HTTP client and base URL explicitly so
// the package stays free of client-level state.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	apierr "github.com/wsapio/wsap-go/client/internal/errors"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Do is the single request primitive behind every operation. It issues one
// HTTP call and maps the outcome onto the error taxonomy:
//
//   - transport failure with no response -> *APIError with StatusCode 0
//   - 401/403 -> *AuthenticationError, 404 -> *NotFoundError
//   - any other non-2xx -> *APIError carrying status and raw body
//   - 2xx with empty body -> empty RawMessage, not an error
//
// The raw body of a 2xx response is returned undecoded; Decode checks that it
// is valid JSON when a caller asks for a typed view.
func Do(ctx context.Context, httpClient HTTPClient, baseURL, method, path string, query url.Values, body any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u := strings.TrimRight(baseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// Note: Authorization, Accept, User-Agent and X-Request-Id are added by
	// the transport layer.

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport(err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.FromTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierr.FromResponse(resp.StatusCode, string(raw))
	}
	if len(raw) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, &apierr.ParseError{Err: errInvalidJSON, Body: string(raw)}
	}
	return json.RawMessage(raw), nil
}

var errInvalidJSON = errors.New("body is not valid JSON")

// Decode unmarshals a 2xx body into v. An empty body leaves v at its zero
// value. Invalid JSON is a *ParseError.
func Decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &apierr.ParseError{Err: err, Body: string(raw)}
	}
	return nil
}
