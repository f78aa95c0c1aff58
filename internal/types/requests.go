package types

// ------------------------------
// Request payloads
// ------------------------------

// InitiateVerificationRequest starts a domain-ownership challenge.
type InitiateVerificationRequest struct {
	Domain string `json:"domain"`
	Method string `json:"method"`
}

// VerifyDomainRequest asks the server to check the pending challenge.
type VerifyDomainRequest struct {
	Domain string `json:"domain"`
}

// GenerateWSAPRequest produces a disclosure document for an entity.
type GenerateWSAPRequest struct {
	EntityID        string `json:"entity_id"`
	DisclosureLevel string `json:"disclosure_level"`
}
