package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"github.com/wsapio/wsap-go/client/internal/api"
	apierr "github.com/wsapio/wsap-go/client/internal/errors"
)

const (
	// DefaultBaseURL is the canonical production endpoint.
	DefaultBaseURL = "https://api.wsap.io"

	// DefaultTimeout bounds each request when no override is given.
	DefaultTimeout = 30 * time.Second

	userAgent = "wsap-go/" + Version
)

// Version is the client release stamped into the User-Agent header.
const Version = "0.3.0"

// envConfig is the environment fallback for construction-time settings
// (WSAP_API_KEY, WSAP_BASE_URL, WSAP_TIMEOUT).
type envConfig struct {
	APIKey  string        `envconfig:"API_KEY"`
	BaseURL string        `envconfig:"BASE_URL"`
	Timeout time.Duration `envconfig:"TIMEOUT"`
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a stateless handle on the WSAP API. It holds only immutable
// configuration after construction and is safe to share across goroutines.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
}

// New constructs a Client. An empty apiKey falls back to the WSAP_API_KEY
// environment variable; if neither source yields a key, construction fails
// with *AuthenticationError — a Client never exists unauthenticated.
// Additional settings can be provided via functional options.
func New(apiKey string, opts ...Option) (*Client, error) {
	var env envConfig
	if err := envconfig.Process("WSAP", &env); err != nil {
		return nil, err
	}

	if apiKey == "" {
		apiKey = env.APIKey
	}
	if apiKey == "" {
		return nil, &apierr.AuthenticationError{Msg: "no API key: pass one to New or set WSAP_API_KEY"}
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	if env.BaseURL != "" {
		c.baseURL = env.BaseURL
	}
	if env.Timeout > 0 {
		c.http.Timeout = env.Timeout
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the transport last so auth and observability headers apply no
	// matter which transport an option installed underneath.
	c.http.Transport = &metricsTransport{base: c.http.Transport}
	c.wrapTransportWithHeaders()

	return c, nil
}

// NewFromEnv constructs a Client entirely from WSAP_* environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	return New("", opts...)
}

// BaseURL returns the endpoint the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// wrapTransportWithHeaders wraps the HTTP client's transport to stamp the
// Authorization, Accept, User-Agent and X-Request-Id headers on every request.
func (c *Client) wrapTransportWithHeaders() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// headerTransport wraps an http.RoundTripper to add the bearer token and the
// fixed client-identification headers.
type headerTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	cloned.Header.Set("Accept", "application/json")
	cloned.Header.Set("User-Agent", userAgent)
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	// The API expects the content type even on bodyless requests.
	if cloned.Header.Get("Content-Type") == "" {
		cloned.Header.Set("Content-Type", "application/json")
	}
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Entity operations - delegated to internal/api
// --------------------------------------------------------------------

// ListEntities retrieves entities; filters are passed verbatim as query
// parameters.
func (c *Client) ListEntities(ctx context.Context, filters map[string]string) ([]Entity, error) {
	return api.ListEntities(ctx, c.http, c.baseURL, filters)
}

// GetEntity retrieves a single entity by ID or slug.
func (c *Client) GetEntity(ctx context.Context, idOrSlug string) (*Entity, error) {
	return api.GetEntity(ctx, c.http, c.baseURL, idOrSlug)
}

// CreateEntity registers a new entity. data is sent as-is; the server is the
// authority on which fields it accepts.
func (c *Client) CreateEntity(ctx context.Context, data any) (*Entity, error) {
	return api.CreateEntity(ctx, c.http, c.baseURL, data)
}

// UpdateEntity replaces an entity's representation.
func (c *Client) UpdateEntity(ctx context.Context, idOrSlug string, data any) (*Entity, error) {
	return api.UpdateEntity(ctx, c.http, c.baseURL, idOrSlug, data)
}

// DeleteEntity removes an entity. Backend returns an empty body on success.
func (c *Client) DeleteEntity(ctx context.Context, idOrSlug string) error {
	return api.DeleteEntity(ctx, c.http, c.baseURL, idOrSlug)
}

// --------------------------------------------------------------------
// Verification operations - delegated to internal/api
// --------------------------------------------------------------------

// InitiateVerification starts a domain-ownership challenge. An empty method
// selects "dns_txt".
func (c *Client) InitiateVerification(ctx context.Context, domain, method string) (*Verification, error) {
	return api.InitiateVerification(ctx, c.http, c.baseURL, domain, method)
}

// VerifyDomain checks the pending challenge for a domain. API-level failures
// that carry an HTTP status fold to (false, nil) so polling loops keep
// running; see internal/api.VerifyDomain for the exact downgrade rule.
func (c *Client) VerifyDomain(ctx context.Context, domain string) (bool, error) {
	return api.VerifyDomain(ctx, c.http, c.baseURL, domain)
}

// --------------------------------------------------------------------
// WSAP disclosure operations - delegated to internal/api
// --------------------------------------------------------------------

// GenerateWSAP produces a disclosure document for an entity. The level is
// upper-cased before transmission; empty selects DisclosureStandard.
func (c *Client) GenerateWSAP(ctx context.Context, entityID, disclosureLevel string) (*WSAPData, error) {
	return api.GenerateWSAP(ctx, c.http, c.baseURL, entityID, disclosureLevel)
}

// FetchWSAP retrieves the published disclosure document for a domain.
func (c *Client) FetchWSAP(ctx context.Context, domain string) (*WSAPData, error) {
	return api.FetchWSAP(ctx, c.http, c.baseURL, domain)
}

// --------------------------------------------------------------------
// Account and service operations - delegated to internal/api
// --------------------------------------------------------------------

// GetCurrentUser returns the account behind the configured API key.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	return api.GetCurrentUser(ctx, c.http, c.baseURL)
}

// HealthCheck reports service liveness.
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	return api.HealthCheck(ctx, c.http, c.baseURL)
}
