// Package research provides web search for exploratory queries, backed by
// the Tavily search API with optional LLM summarization.
package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/llm"
)

const searchEndpoint = "https://api.tavily.com/search"

// Result is one search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// Response is a completed search.
type Response struct {
	Query   string
	Answer  string
	Results []Result
}

// Options tune one search call.
type Options struct {
	// Recency restricts results by age: day, week, month, or year.
	Recency string

	// MaxResults caps the result count; zero uses the API default.
	MaxResults int

	// Model, when set, produces an LLM summary of the results.
	Model string
}

// Client performs research searches.
type Client struct {
	apiKey     string
	httpClient *http.Client
	llm        *llm.Client
}

// New creates a client from the [research] config section. llmClient may be
// nil; summarization is then unavailable.
func New(research map[string]string, llmClient *llm.Client) (*Client, error) {
	apiKey := research["tavily_api_key"]
	if apiKey == "" {
		apiKey = research["tavily"]
	}
	if !config.IsConfigured(apiKey) {
		return nil, fmt.Errorf("research requires research.tavily_api_key in kurt.toml")
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		llm:        llmClient,
	}, nil
}

type searchRequest struct {
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	Days          int    `json:"days,omitempty"`
	MaxResults    int    `json:"max_results,omitempty"`
	IncludeAnswer bool   `json:"include_answer"`
}

type searchResponse struct {
	Answer  string   `json:"answer"`
	Results []Result `json:"results"`
}

var recencyDays = map[string]int{
	"day":   1,
	"week":  7,
	"month": 30,
	"year":  365,
}

// Search runs one query, with an LLM summary when Options.Model is set.
func (c *Client) Search(ctx context.Context, query string, opts Options) (*Response, error) {
	reqBody := searchRequest{
		Query:         query,
		SearchDepth:   "advanced",
		MaxResults:    opts.MaxResults,
		IncludeAnswer: true,
	}
	if opts.Recency != "" {
		days, ok := recencyDays[strings.ToLower(opts.Recency)]
		if !ok {
			return nil, fmt.Errorf("invalid recency %q: want day, week, month, or year", opts.Recency)
		}
		reqBody.Days = days
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, searchEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, 32<<20))
	if err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily search status %d", httpResp.StatusCode)
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	out := &Response{Query: query, Answer: resp.Answer, Results: resp.Results}
	if opts.Model != "" {
		summary, err := c.summarize(ctx, opts.Model, query, resp.Results)
		if err != nil {
			return nil, err
		}
		out.Answer = summary
	}
	return out, nil
}

const summarizeSystem = `You summarize web search results. Answer the user's question from the provided sources only, citing source URLs inline.`

func (c *Client) summarize(ctx context.Context, model, query string, results []Result) (string, error) {
	if c.llm == nil {
		return "", fmt.Errorf("summarization requires a configured LLM")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Question: %s\n\nSources:\n", query)
	for i, r := range results {
		fmt.Fprintf(&sb, "\n[%d] %s (%s)\n%s\n", i+1, r.Title, r.URL, r.Content)
	}
	return c.llm.Complete(ctx, model, summarizeSystem, sb.String())
}
