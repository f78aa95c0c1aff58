package errors

import "errors"

// FromResponse maps a received HTTP status to the error taxonomy. It must only
// be called for non-2xx statuses; body is the raw response text.
func FromResponse(statusCode int, body string) error {
	switch statusCode {
	case 401, 403:
		return &AuthenticationError{StatusCode: statusCode, Msg: body}
	case 404:
		return &NotFoundError{Body: body}
	default:
		return &APIError{StatusCode: statusCode, Body: body}
	}
}

// FromTransport wraps a network-level failure where no response was received
// (connection refused, timeout, DNS failure). StatusCode 0 distinguishes it
// from every received status.
func FromTransport(err error) error {
	return &APIError{StatusCode: 0, Err: err}
}

// IsAuthentication reports whether err is an *AuthenticationError.
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsParse reports whether err is a *ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsAPI reports whether err is an *APIError.
func IsAPI(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
