package mapper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
)

// crawlDefaultLimit caps discovery when the caller sets none; crawling an
// unbounded site is never intended.
const crawlDefaultLimit = 500

// CrawlSource discovers documents by breadth-first crawling links within the
// start URL's host.
type CrawlSource struct {
	httpClient *http.Client
}

// NewCrawlSource creates the source.
func NewCrawlSource() *CrawlSource {
	return &CrawlSource{httpClient: &http.Client{Timeout: 30 * time.Second}}
}

// Method implements Source.
func (s *CrawlSource) Method() discovery.Method { return discovery.MethodCrawl }

// Discover implements Source.
func (s *CrawlSource) Discover(ctx context.Context, identifier string, limit int) ([]Ref, error) {
	start, err := url.Parse(identifier)
	if err != nil || start.Host == "" {
		return nil, fmt.Errorf("crawl source %q is not an absolute URL", identifier)
	}
	if limit <= 0 {
		limit = crawlDefaultLimit
	}

	seen := map[string]bool{identifier: true}
	queue := []string{identifier}
	var refs []Ref

	for len(queue) > 0 && len(refs) < limit {
		if ctx.Err() != nil {
			break
		}
		current := queue[0]
		queue = queue[1:]

		title, links, err := s.fetchPage(ctx, current)
		if err != nil {
			continue
		}
		refs = append(refs, Ref{SourceURL: current, SourceType: document.SourceTypeURL, Title: title})

		for _, link := range links {
			resolved := resolveLink(start, current, link)
			if resolved == "" || seen[resolved] {
				continue
			}
			seen[resolved] = true
			queue = append(queue, resolved)
		}
	}
	return refs, nil
}

func (s *CrawlSource) fetchPage(ctx context.Context, pageURL string) (title string, links []string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		return "", nil, fmt.Errorf("not html: %s", ct)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", nil, err
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Title:
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
			case atom.A:
				for _, a := range n.Attr {
					if a.Key == "href" {
						links = append(links, a.Val)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title, links, nil
}

// resolveLink resolves href against the current page and keeps it only when
// it stays on the crawl host and looks like a content page.
func resolveLink(start *url.URL, pageURL, href string) string {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	resolved, err := base.Parse(href)
	if err != nil {
		return ""
	}
	if resolved.Host != start.Host {
		return ""
	}
	resolved.Fragment = ""
	resolved.RawQuery = ""

	lower := strings.ToLower(resolved.Path)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".css", ".js", ".pdf", ".zip", ".ico", ".woff", ".woff2"} {
		if strings.HasSuffix(lower, ext) {
			return ""
		}
	}
	return resolved.String()
}
