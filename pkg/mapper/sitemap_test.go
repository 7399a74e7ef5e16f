package mapper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurt-labs/kurt/ent/document"
)

const urlsetXML = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/a</loc></url>
  <url><loc>https://example.com/b</loc></url>
  <url><loc>https://example.com/a</loc></url>
  <url><loc> </loc></url>
</urlset>`

func TestSitemapDiscover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sitemap.xml", r.URL.Path)
		fmt.Fprint(w, urlsetXML)
	}))
	defer srv.Close()

	src := NewSitemapSource()
	refs, err := src.Discover(context.Background(), srv.URL+"/sitemap.xml", 0)
	require.NoError(t, err)

	// Duplicates and blanks are dropped.
	require.Len(t, refs, 2)
	assert.Equal(t, "https://example.com/a", refs[0].SourceURL)
	assert.Equal(t, "https://example.com/b", refs[1].SourceURL)
	assert.Equal(t, document.SourceTypeURL, refs[0].SourceType)
}

func TestSitemapDiscover_ProbesSiteRoot(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		fmt.Fprint(w, urlsetXML)
	}))
	defer srv.Close()

	src := NewSitemapSource()
	_, err := src.Discover(context.Background(), srv.URL+"/", 0)
	require.NoError(t, err)
	assert.Equal(t, "/sitemap.xml", requested)
}

func TestSitemapDiscover_Limit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, urlsetXML)
	}))
	defer srv.Close()

	src := NewSitemapSource()
	refs, err := src.Discover(context.Background(), srv.URL+"/sitemap.xml", 1)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestSitemapDiscover_FollowsIndex(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%s/child-1.xml</loc></sitemap>
  <sitemap><loc>%s/broken.xml</loc></sitemap>
  <sitemap><loc>%s/child-2.xml</loc></sitemap>
</sitemapindex>`, srv.URL, srv.URL, srv.URL)
	})
	mux.HandleFunc("/child-1.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset><url><loc>https://example.com/one</loc></url></urlset>`)
	})
	mux.HandleFunc("/broken.xml", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})
	mux.HandleFunc("/child-2.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<urlset><url><loc>https://example.com/two</loc></url></urlset>`)
	})

	src := NewSitemapSource()
	refs, err := src.Discover(context.Background(), srv.URL+"/sitemap.xml", 0)
	require.NoError(t, err)

	// Index order preserved; the broken child is skipped, not fatal.
	require.Len(t, refs, 2)
	assert.Equal(t, "https://example.com/one", refs[0].SourceURL)
	assert.Equal(t, "https://example.com/two", refs[1].SourceURL)
}

func TestSitemapDiscover_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src := NewSitemapSource()
	_, err := src.Discover(context.Background(), srv.URL+"/sitemap.xml", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestSitemapDiscover_Unparseable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not a sitemap</html>`)
	}))
	defer srv.Close()

	src := NewSitemapSource()
	_, err := src.Discover(context.Background(), srv.URL+"/sitemap.xml", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parseable")
}
