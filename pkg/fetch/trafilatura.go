package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kurt-labs/kurt/pkg/version"
)

var fetchUserAgent = version.Full() + " (+https://github.com/kurt-labs/kurt)"

// Trafilatura is the default local engine: plain HTTP retrieval followed by
// main-content extraction to markdown. No native batch API.
type Trafilatura struct {
	httpClient *http.Client
}

// NewTrafilatura creates the engine with a shared HTTP client.
func NewTrafilatura(httpClient *http.Client) *Trafilatura {
	return &Trafilatura{httpClient: httpClient}
}

func (t *Trafilatura) Name() string { return "trafilatura" }

func (t *Trafilatura) MaxBatch() int { return 0 }

// Fetch retrieves one URL at a time; callers schedule concurrency.
func (t *Trafilatura) Fetch(ctx context.Context, urls []string) map[string]Outcome {
	out := make(map[string]Outcome, len(urls))
	for _, u := range urls {
		out[u] = fetchAndExtract(ctx, t.httpClient, u, true)
	}
	return out
}

// HTTPX is the plain-transport variant: same retrieval, but the whole page
// body is converted instead of the pruned main-content region. Useful for
// pages whose content lives outside article markup.
type HTTPX struct {
	httpClient *http.Client
}

// NewHTTPX creates the engine with a shared HTTP client.
func NewHTTPX(httpClient *http.Client) *HTTPX {
	return &HTTPX{httpClient: httpClient}
}

func (h *HTTPX) Name() string { return "httpx" }

func (h *HTTPX) MaxBatch() int { return 0 }

func (h *HTTPX) Fetch(ctx context.Context, urls []string) map[string]Outcome {
	out := make(map[string]Outcome, len(urls))
	for _, u := range urls {
		out[u] = fetchAndExtract(ctx, h.httpClient, u, false)
	}
	return out
}

func fetchAndExtract(ctx context.Context, client *http.Client, url string, pruneToMain bool) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Err: err}
	}
	req.Header.Set("User-Agent", fetchUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return Outcome{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Outcome{Err: fmt.Errorf("GET %s: status %d", url, resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return Outcome{Err: fmt.Errorf("reading %s: %w", url, err)}
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/plain") || strings.Contains(contentType, "text/markdown") {
		return Outcome{
			Content:  string(body),
			Metadata: map[string]any{"content_type": contentType},
		}
	}

	src := string(body)
	if !pruneToMain {
		// Keep the full body region; extraction still prunes script/style.
		src = strings.Replace(src, "<main", "<div", 1)
		src = strings.Replace(src, "</main>", "</div>", 1)
		src = strings.Replace(src, "<article", "<div", 1)
		src = strings.Replace(src, "</article>", "</div>", 1)
	}

	markdown, title, description, err := ExtractMarkdown(src)
	if err != nil {
		return Outcome{Err: fmt.Errorf("extracting %s: %w", url, err)}
	}
	if strings.TrimSpace(markdown) == "" {
		return Outcome{Err: fmt.Errorf("no extractable content at %s", url)}
	}

	meta := map[string]any{}
	if title != "" {
		meta["title"] = title
	}
	if description != "" {
		meta["description"] = description
	}
	return Outcome{Content: markdown, Metadata: meta}
}
