package client

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// errNotYetVerified drives the retry loop; it never escapes AwaitVerification.
var errNotYetVerified = errors.New("domain not verified yet")

// AwaitVerification polls VerifyDomain with exponential backoff until the
// domain verifies, the context is done, or an unrecoverable error occurs.
//
// The core operations never retry; this helper is the opt-in polling wrapper
// for callers who would otherwise hand-roll the loop after publishing their
// DNS TXT record. Authentication and not-found errors abort immediately since
// more polling cannot fix them.
func (c *Client) AwaitVerification(ctx context.Context, domain string) error {
	op := func() error {
		verified, err := c.VerifyDomain(ctx, domain)
		if err != nil {
			if IsAuthentication(err) || IsNotFound(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		if !verified {
			return errNotYetVerified
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // bounded by ctx, not wall time

	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
