package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	tavilyExtractEndpoint = "https://api.tavily.com/extract"

	// TavilyMaxBatch is the API's hard cap on URLs per extract call.
	TavilyMaxBatch = 20
)

// Tavily is the hosted extraction engine with a native batch API.
type Tavily struct {
	apiKey     string
	httpClient *http.Client
}

// NewTavily creates the engine.
func NewTavily(apiKey string, httpClient *http.Client) *Tavily {
	return &Tavily{apiKey: apiKey, httpClient: httpClient}
}

func (t *Tavily) Name() string { return "tavily" }

func (t *Tavily) MaxBatch() int { return TavilyMaxBatch }

type tavilyExtractRequest struct {
	URLs []string `json:"urls"`
}

type tavilyExtractResponse struct {
	Results []struct {
		URL        string `json:"url"`
		RawContent string `json:"raw_content"`
	} `json:"results"`
	FailedResults []struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	} `json:"failed_results"`
}

// Fetch extracts up to TavilyMaxBatch URLs in one API call. Oversized input
// is an engine bug upstream; it is rejected rather than silently split.
func (t *Tavily) Fetch(ctx context.Context, urls []string) map[string]Outcome {
	if len(urls) > TavilyMaxBatch {
		return errorOutcomes(urls, fmt.Errorf("tavily batch of %d exceeds cap %d", len(urls), TavilyMaxBatch))
	}

	body, err := json.Marshal(tavilyExtractRequest{URLs: urls})
	if err != nil {
		return errorOutcomes(urls, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilyExtractEndpoint, bytes.NewReader(body))
	if err != nil {
		return errorOutcomes(urls, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	httpResp, err := t.httpClient.Do(req)
	if err != nil {
		return errorOutcomes(urls, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, 64<<20))
	if err != nil {
		return errorOutcomes(urls, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return errorOutcomes(urls, fmt.Errorf("tavily status %d", httpResp.StatusCode))
	}

	var resp tavilyExtractResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return errorOutcomes(urls, fmt.Errorf("decoding tavily response: %w", err))
	}

	out := make(map[string]Outcome, len(urls))
	for _, r := range resp.Results {
		out[r.URL] = Outcome{Content: r.RawContent, Metadata: map[string]any{}}
	}
	for _, f := range resp.FailedResults {
		out[f.URL] = Outcome{Err: fmt.Errorf("tavily: %s", f.Error)}
	}
	// URLs absent from both lists still get an entry.
	for _, u := range urls {
		if _, ok := out[u]; !ok {
			out[u] = Outcome{Err: fmt.Errorf("tavily returned no result for %s", u)}
		}
	}
	return out
}
