// Package client is the Go SDK for the WSAP entity, domain-verification and
// disclosure API.
//
// A Client is constructed once with an API key and shared freely; it holds no
// mutable state after construction. Every operation is a single synchronous
// request bounded by the configured timeout, with failures mapped onto a
// small typed taxonomy (AuthenticationError, NotFoundError, ParseError,
// APIError).
//
//	c, err := client.New("wsap_live_...")
//	if err != nil {
//		// no API key resolved
//	}
//	entity, err := c.CreateEntity(ctx, map[string]any{
//		"display_name": "Acme Corp",
//		"entity_type":  "company",
//	})
//
// The client performs no retries of its own. AwaitVerification is the one
// convenience loop shipped with the SDK, for polling a pending DNS TXT
// challenge.
package client
