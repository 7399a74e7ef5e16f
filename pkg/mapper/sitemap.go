package mapper

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
)

// SitemapSource discovers documents from XML sitemaps, following sitemap
// index files one level deep.
type SitemapSource struct {
	httpClient *http.Client
}

// NewSitemapSource creates the source.
func NewSitemapSource() *SitemapSource {
	return &SitemapSource{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

// Method implements Source.
func (s *SitemapSource) Method() discovery.Method { return discovery.MethodSitemap }

type sitemapURLSet struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

type sitemapIndex struct {
	Sitemaps []struct {
		Loc string `xml:"loc"`
	} `xml:"sitemap"`
}

// Discover implements Source. The identifier is either a sitemap URL or a
// site root; the latter is probed at /sitemap.xml.
func (s *SitemapSource) Discover(ctx context.Context, identifier string, limit int) ([]Ref, error) {
	sitemapURL := identifier
	if !strings.Contains(sitemapURL, "sitemap") && !strings.HasSuffix(sitemapURL, ".xml") {
		sitemapURL = strings.TrimSuffix(sitemapURL, "/") + "/sitemap.xml"
	}

	locs, err := s.fetchLocs(ctx, sitemapURL, true)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var refs []Ref
	for _, loc := range locs {
		loc = strings.TrimSpace(loc)
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		refs = append(refs, Ref{SourceURL: loc, SourceType: document.SourceTypeURL})
		if limit > 0 && len(refs) >= limit {
			break
		}
	}
	return refs, nil
}

// fetchLocs downloads one sitemap and returns its URL entries, recursing
// through index files when followIndex is set.
func (s *SitemapSource) fetchLocs(ctx context.Context, sitemapURL string, followIndex bool) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sitemap %s: %w", sitemapURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sitemap %s: status %d", sitemapURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("reading sitemap %s: %w", sitemapURL, err)
	}

	var urlset sitemapURLSet
	if err := xml.Unmarshal(data, &urlset); err == nil && len(urlset.URLs) > 0 {
		locs := make([]string, 0, len(urlset.URLs))
		for _, u := range urlset.URLs {
			locs = append(locs, u.Loc)
		}
		return locs, nil
	}

	var index sitemapIndex
	if err := xml.Unmarshal(data, &index); err == nil && len(index.Sitemaps) > 0 {
		if !followIndex {
			return nil, fmt.Errorf("sitemap %s: nested index not followed", sitemapURL)
		}
		return s.fetchChildren(ctx, index)
	}

	return nil, fmt.Errorf("sitemap %s: no parseable url or sitemap entries", sitemapURL)
}

// fetchChildren downloads the child sitemaps of an index concurrently,
// preserving index order in the result. A broken child does not sink the
// rest.
func (s *SitemapSource) fetchChildren(ctx context.Context, index sitemapIndex) ([]string, error) {
	results := make([][]string, len(index.Sitemaps))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, child := range index.Sitemaps {
		loc := strings.TrimSpace(child.Loc)
		g.Go(func() error {
			childLocs, err := s.fetchLocs(ctx, loc, false)
			if err != nil {
				return nil
			}
			results[i] = childLocs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var locs []string
	for _, r := range results {
		locs = append(locs, r...)
	}
	return locs, nil
}
