package mapper

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
)

// ManualSource handles explicitly listed identifiers (CLI --urls / --files).
// The identifier is a comma-separated list; entries starting with http(s)
// become url documents, everything else becomes a file document.
type ManualSource struct{}

// NewManualSource creates a manual listing source.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Method implements Source.
func (s *ManualSource) Method() discovery.Method { return discovery.MethodManual }

// Discover implements Source.
func (s *ManualSource) Discover(_ context.Context, identifier string, limit int) ([]Ref, error) {
	var refs []Ref
	for _, raw := range strings.Split(identifier, ",") {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if limit > 0 && len(refs) >= limit {
			break
		}
		ref := Ref{SourceURL: entry}
		if strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://") {
			ref.SourceType = document.SourceTypeURL
			ref.Title = entry
		} else {
			ref.SourceType = document.SourceTypeFile
			ref.Title = strings.TrimSuffix(filepath.Base(entry), filepath.Ext(entry))
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
