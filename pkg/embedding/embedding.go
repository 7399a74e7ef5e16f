// Package embedding provides the dense-vector provider used by the fetch
// pipeline and claim clustering, plus the byte-vector codec the database
// stores.
package embedding

import (
	"context"

	"github.com/kurt-labs/kurt/pkg/config"
)

// Provider produces embeddings for batches of texts. Implementations must
// return one vector per input text, in input order.
type Provider interface {
	// Embed embeds a batch of texts.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the vector width the provider produces.
	Dimensions() int
}

// NewFromConfig builds the configured provider. Returns nil when no API key
// is configured; callers treat a nil provider as "embeddings disabled" and
// skip silently.
func NewFromConfig(cfg config.EmbeddingConfig) Provider {
	if !config.IsConfigured(cfg.APIKey) {
		return nil
	}
	return NewVoyageClient(cfg)
}
