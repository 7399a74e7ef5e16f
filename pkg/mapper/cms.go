package mapper

import (
	"context"

	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/pkg/cms"
)

// CMSSource discovers documents by listing a configured CMS instance. The
// identifier is platform:instance; discovered source URLs carry the full
// platform:instance:document form the fetch pipeline resolves.
type CMSSource struct {
	registry *cms.Registry
}

// NewCMSSource creates the source.
func NewCMSSource(registry *cms.Registry) *CMSSource {
	return &CMSSource{registry: registry}
}

// Method implements Source.
func (s *CMSSource) Method() discovery.Method { return discovery.MethodCms }

// Discover implements Source.
func (s *CMSSource) Discover(ctx context.Context, identifier string, limit int) ([]Ref, error) {
	platform, instance, err := ParseCMSIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	entries, err := s.registry.List(ctx, platform, instance)
	if err != nil {
		return nil, err
	}

	refs := make([]Ref, 0, len(entries))
	for _, entry := range entries {
		refs = append(refs, Ref{
			SourceURL:   cms.Identifier(platform, instance, entry.ID),
			SourceType:  document.SourceTypeCms,
			Title:       entry.Title,
			Description: entry.Description,
		})
		if limit > 0 && len(refs) >= limit {
			break
		}
	}
	return refs, nil
}
