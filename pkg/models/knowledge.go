package models

import "time"

// DocumentSummary is one row of a document listing.
type DocumentSummary struct {
	DocumentID  string    `json:"document_id"`
	SourceURL   string    `json:"source_url"`
	SourceType  string    `json:"source_type"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	ContentPath string    `json:"content_path,omitempty"`
	Indexed     bool      `json:"indexed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntitySummary is one entity with its claim count.
type EntitySummary struct {
	EntityID   string   `json:"entity_id"`
	Name       string   `json:"name"`
	EntityType string   `json:"entity_type"`
	Aliases    []string `json:"aliases,omitempty"`
	ClaimCount int      `json:"claim_count"`
}

// ClaimRecord is one claim with its anchoring context.
type ClaimRecord struct {
	ClaimID       string  `json:"claim_id"`
	Statement     string  `json:"statement"`
	ClaimType     string  `json:"claim_type"`
	Confidence    float64 `json:"confidence"`
	SubjectEntity string  `json:"subject_entity_id"`
	DocumentID    string  `json:"document_id"`
	SourceQuote   string  `json:"source_quote,omitempty"`
}
