package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const firecrawlEndpoint = "https://api.firecrawl.dev/v1/scrape"

// Firecrawl is the hosted scraping engine. The API scrapes one URL per call,
// so batches of any size are accepted and worked through sequentially inside
// one Fetch invocation.
type Firecrawl struct {
	apiKey     string
	httpClient *http.Client
}

// NewFirecrawl creates the engine.
func NewFirecrawl(apiKey string, httpClient *http.Client) *Firecrawl {
	return &Firecrawl{apiKey: apiKey, httpClient: httpClient}
}

func (f *Firecrawl) Name() string { return "firecrawl" }

// MaxBatch is unbounded; the pipeline passes whole batches through.
func (f *Firecrawl) MaxBatch() int { return 1 << 30 }

type firecrawlRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
		Metadata struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			StatusCode  int    `json:"statusCode"`
		} `json:"metadata"`
	} `json:"data"`
	Error string `json:"error"`
}

func (f *Firecrawl) Fetch(ctx context.Context, urls []string) map[string]Outcome {
	out := make(map[string]Outcome, len(urls))
	for _, u := range urls {
		if ctx.Err() != nil {
			out[u] = Outcome{Err: ctx.Err()}
			continue
		}
		out[u] = f.scrapeOne(ctx, u)
	}
	return out
}

func (f *Firecrawl) scrapeOne(ctx context.Context, url string) Outcome {
	body, err := json.Marshal(firecrawlRequest{URL: url, Formats: []string{"markdown"}})
	if err != nil {
		return Outcome{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, firecrawlEndpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	httpResp, err := f.httpClient.Do(req)
	if err != nil {
		return Outcome{Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, 32<<20))
	if err != nil {
		return Outcome{Err: err}
	}
	if httpResp.StatusCode != http.StatusOK {
		return Outcome{Err: fmt.Errorf("firecrawl status %d for %s", httpResp.StatusCode, url)}
	}

	var resp firecrawlResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Outcome{Err: fmt.Errorf("decoding firecrawl response: %w", err)}
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "unspecified failure"
		}
		return Outcome{Err: fmt.Errorf("firecrawl: %s", msg)}
	}
	if resp.Data.Markdown == "" {
		return Outcome{Err: fmt.Errorf("firecrawl returned no content for %s", url)}
	}

	meta := map[string]any{}
	if resp.Data.Metadata.Title != "" {
		meta["title"] = resp.Data.Metadata.Title
	}
	if resp.Data.Metadata.Description != "" {
		meta["description"] = resp.Data.Metadata.Description
	}
	return Outcome{Content: resp.Data.Markdown, Metadata: meta}
}
