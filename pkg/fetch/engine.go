// Package fetch implements the engine-polymorphic document fetch pipeline:
// pluggable extraction engines, the on-disk content store, and the fetch
// workflow tool that ties them together.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kurt-labs/kurt/pkg/config"
)

// Outcome is the per-URL result of an engine call. Exactly one of Content or
// Err is meaningful.
type Outcome struct {
	Content  string
	Metadata map[string]any
	Err      error
}

// Engine fetches a set of URLs and returns a per-URL outcome map. One URL's
// failure never affects the others; an engine-level failure (bad API key,
// network down) fans out as an error for every URL in the batch.
type Engine interface {
	// Name returns the engine identifier used in config and fetch records.
	Name() string

	// MaxBatch returns the largest URL batch one Fetch call accepts.
	// 0 means no native batch API: callers schedule one URL per call.
	MaxBatch() int

	// Fetch retrieves the given URLs. The returned map has an entry for
	// every input URL.
	Fetch(ctx context.Context, urls []string) map[string]Outcome
}

// BatchTimeout sizes a per-batch deadline by batch length.
func BatchTimeout(n int) time.Duration {
	return 60*time.Second + time.Duration(n)*5*time.Second
}

// NewEngine constructs the named engine from fetch config.
func NewEngine(name string, cfg config.FetchConfig) (Engine, error) {
	httpClient := &http.Client{Timeout: 90 * time.Second}
	switch name {
	case "trafilatura":
		return NewTrafilatura(httpClient), nil
	case "httpx":
		return NewHTTPX(httpClient), nil
	case "firecrawl":
		if !config.IsConfigured(cfg.FirecrawlAPIKey) {
			return nil, fmt.Errorf("engine firecrawl requires fetch.firecrawl_api_key")
		}
		return NewFirecrawl(cfg.FirecrawlAPIKey, httpClient), nil
	case "tavily":
		if !config.IsConfigured(cfg.TavilyAPIKey) {
			return nil, fmt.Errorf("engine tavily requires fetch.tavily_api_key")
		}
		return NewTavily(cfg.TavilyAPIKey, httpClient), nil
	}
	return nil, fmt.Errorf("unknown fetch engine %q", name)
}

// errorOutcomes fans one error out to every URL in a batch.
func errorOutcomes(urls []string, err error) map[string]Outcome {
	out := make(map[string]Outcome, len(urls))
	for _, u := range urls {
		out[u] = Outcome{Err: err}
	}
	return out
}
