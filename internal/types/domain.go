package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Entity represents a registered organization or individual record managed by
// the WSAP service. The server owns the shape; the client decodes the fields
// it models and ignores the rest.
type Entity struct {
	ID          string         `json:"id"`
	EntityType  string         `json:"entity_type"`
	DisplayName string         `json:"display_name"`
	Slug        string         `json:"slug,omitempty"`
	Verified    bool           `json:"verified"`
	Published   bool           `json:"published"`
	WSAPData    map[string]any `json:"wsap_data,omitempty"`
	CreatedAt   *time.Time     `json:"created_at,omitempty"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

// Verification represents a domain-ownership proof workflow, typically a DNS
// TXT record challenge.
type Verification struct {
	Domain         string     `json:"domain"`
	Method         string     `json:"method,omitempty"`
	Token          string     `json:"token,omitempty"`
	TXTRecordName  string     `json:"txt_record_name,omitempty"`
	TXTRecordValue string     `json:"txt_record_value,omitempty"`
	Status         string     `json:"status,omitempty"`
	Attempts       int        `json:"attempts,omitempty"`
	MaxAttempts    int        `json:"max_attempts,omitempty"`
	LastCheckedAt  *time.Time `json:"last_checked_at,omitempty"`
}

// WSAPData is a versioned disclosure document for an entity, generated at a
// given disclosure level and fetched per domain.
type WSAPData struct {
	Version         string         `json:"version,omitempty"`
	DisclosureLevel string         `json:"disclosure_level,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	GeneratedAt     *time.Time     `json:"generated_at,omitempty"`
}

// User represents the authenticated account behind the API key.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// Health is the service liveness report.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Disclosure levels accepted by the WSAP generation endpoint, ordered from
// least to most verbose.
const (
	DisclosureBasic    = "BASIC"
	DisclosureStandard = "STANDARD"
	DisclosureDetailed = "DETAILED"
	DisclosureComplete = "COMPLETE"
)
