package client

import (
	apierr "github.com/wsapio/wsap-go/client/internal/errors"
)

// Public aliases so SDK consumers match errors against a single package.
type (
	// AuthenticationError: no API key at construction, or a 401/403 response.
	AuthenticationError = apierr.AuthenticationError
	// NotFoundError: a 404 response.
	NotFoundError = apierr.NotFoundError
	// ParseError: a 2xx response whose non-empty body is not valid JSON.
	ParseError = apierr.ParseError
	// APIError: any other non-2xx status, or a transport failure with no
	// response at all (StatusCode 0).
	APIError = apierr.APIError
)

// IsAuthentication reports whether err is an *AuthenticationError.
func IsAuthentication(err error) bool { return apierr.IsAuthentication(err) }

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool { return apierr.IsNotFound(err) }

// IsParse reports whether err is a *ParseError.
func IsParse(err error) bool { return apierr.IsParse(err) }

// IsAPI reports whether err is an *APIError.
func IsAPI(err error) bool { return apierr.IsAPI(err) }
