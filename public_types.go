package client

import "github.com/wsapio/wsap-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Entity       = types.Entity
	Verification = types.Verification
	WSAPData     = types.WSAPData
	User         = types.User
	Health       = types.Health
)

// Disclosure levels accepted by GenerateWSAP, least to most verbose.
const (
	DisclosureBasic    = types.DisclosureBasic
	DisclosureStandard = types.DisclosureStandard
	DisclosureDetailed = types.DisclosureDetailed
	DisclosureComplete = types.DisclosureComplete
)
