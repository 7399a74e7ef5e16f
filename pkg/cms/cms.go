// Package cms adapts content-management systems to the discovery and fetch
// pipelines. Each platform implements Adapter; instances are configured under
// [cms.<instance>] in kurt.toml.
package cms

import (
	"context"
	"fmt"
	"strings"

	"github.com/kurt-labs/kurt/pkg/config"
)

// Entry is one listed CMS document.
type Entry struct {
	ID          string
	Title       string
	Description string
}

// Adapter talks to one CMS platform.
type Adapter interface {
	// Platform returns the platform key (e.g. sanity, contentful).
	Platform() string

	// List enumerates the instance's documents.
	List(ctx context.Context, cfg config.CMSConfig) ([]Entry, error)

	// Fetch returns one document's content as markdown plus metadata.
	Fetch(ctx context.Context, cfg config.CMSConfig, documentID string) (string, map[string]any, error)
}

// Registry resolves platform:instance:document identifiers against
// configured instances. It implements the fetch pipeline's CMS reader.
type Registry struct {
	adapters  map[string]Adapter
	instances map[string]config.CMSConfig
}

// NewRegistry creates a registry over the configured CMS instances.
func NewRegistry(instances map[string]config.CMSConfig, adapters ...Adapter) *Registry {
	byPlatform := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		byPlatform[a.Platform()] = a
	}
	return &Registry{adapters: byPlatform, instances: instances}
}

// resolve splits an identifier and returns the adapter and instance config.
func (r *Registry) resolve(platform, instance string) (Adapter, config.CMSConfig, error) {
	adapter, ok := r.adapters[platform]
	if !ok {
		return nil, config.CMSConfig{}, fmt.Errorf("unsupported CMS platform %q", platform)
	}
	cfg, ok := r.instances[instance]
	if !ok {
		return nil, config.CMSConfig{}, fmt.Errorf("CMS instance %q is not configured", instance)
	}
	if cfg.Platform != "" && cfg.Platform != platform {
		return nil, config.CMSConfig{}, fmt.Errorf("CMS instance %q is %s, not %s", instance, cfg.Platform, platform)
	}
	return adapter, cfg, nil
}

// List enumerates documents for a platform:instance pair.
func (r *Registry) List(ctx context.Context, platform, instance string) ([]Entry, error) {
	adapter, cfg, err := r.resolve(platform, instance)
	if err != nil {
		return nil, err
	}
	return adapter.List(ctx, cfg)
}

// FetchDocument fetches one document by its platform:instance:document
// identifier, the source_url format for cms documents.
func (r *Registry) FetchDocument(ctx context.Context, identifier string) (string, map[string]any, error) {
	parts := strings.SplitN(identifier, ":", 3)
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("CMS identifier %q must be platform:instance:document", identifier)
	}
	adapter, cfg, err := r.resolve(parts[0], parts[1])
	if err != nil {
		return "", nil, err
	}
	return adapter.Fetch(ctx, cfg, parts[2])
}

// Identifier builds the canonical source_url for a CMS document.
func Identifier(platform, instance, documentID string) string {
	return platform + ":" + instance + ":" + documentID
}
