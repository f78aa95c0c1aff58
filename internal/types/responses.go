package types

// ------------------------------
// Response payloads
// ------------------------------

// VerifyDomainResponse is the only field VerifyDomain reads; anything else the
// server includes is ignored, and a missing field decodes to false.
type VerifyDomainResponse struct {
	Verified bool `json:"verified"`
}

// ListEntitiesPage is the paginated envelope the list endpoint may wrap
// results in. The endpoint is also allowed to return a bare JSON array; the
// API layer accepts both.
type ListEntitiesPage struct {
	Count   int      `json:"count"`
	Results []Entity `json:"results"`
}
