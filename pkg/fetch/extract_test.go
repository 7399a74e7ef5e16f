package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMarkdown(t *testing.T) {
	src := `<!DOCTYPE html>
<html>
<head>
  <title>Intro to Go</title>
  <meta name="description" content="A short guide.">
</head>
<body>
  <nav><a href="/home">Home</a></nav>
  <main>
    <h1>Intro to Go</h1>
    <p>Go is a <strong>compiled</strong> language. See <a href="https://go.dev">the site</a>.</p>
    <h2>Install</h2>
    <ul><li>Download</li><li>Unpack</li></ul>
    <pre>go version</pre>
  </main>
  <footer>Copyright</footer>
  <script>alert("hi")</script>
</body>
</html>`

	md, title, desc, err := ExtractMarkdown(src)
	require.NoError(t, err)

	assert.Equal(t, "Intro to Go", title)
	assert.Equal(t, "A short guide.", desc)

	assert.Contains(t, md, "# Intro to Go")
	assert.Contains(t, md, "## Install")
	assert.Contains(t, md, "**compiled**")
	assert.Contains(t, md, "[the site](https://go.dev)")
	assert.Contains(t, md, "- Download")
	assert.Contains(t, md, "```\ngo version\n```")

	// Boilerplate regions are pruned.
	assert.NotContains(t, md, "Home")
	assert.NotContains(t, md, "Copyright")
	assert.NotContains(t, md, "alert")
}

func TestExtractMarkdown_FallsBackToBody(t *testing.T) {
	src := `<html><head><title>T</title></head><body><p>No main region here.</p></body></html>`

	md, title, _, err := ExtractMarkdown(src)
	require.NoError(t, err)
	assert.Equal(t, "T", title)
	assert.Contains(t, md, "No main region here.")
}

func TestExtractMarkdown_PrefersArticleOverBody(t *testing.T) {
	src := `<html><body>
<div>Sidebar junk</div>
<article><p>The actual story.</p></article>
</body></html>`

	md, _, _, err := ExtractMarkdown(src)
	require.NoError(t, err)
	assert.Contains(t, md, "The actual story.")
	assert.NotContains(t, md, "Sidebar junk")
}

func TestExtractMarkdown_OgDescriptionFallback(t *testing.T) {
	src := `<html><head>
<meta property="og:description" content="From OpenGraph.">
</head><body><main><p>x</p></main></body></html>`

	_, _, desc, err := ExtractMarkdown(src)
	require.NoError(t, err)
	assert.Equal(t, "From OpenGraph.", desc)
}

func TestExtractMarkdown_Images(t *testing.T) {
	src := `<html><body><main>
<p><img src="hero.png" alt="Hero"></p>
<p><img alt="no source"></p>
</main></body></html>`

	md, _, _, err := ExtractMarkdown(src)
	require.NoError(t, err)
	assert.Contains(t, md, "![Hero](hero.png)")
	assert.NotContains(t, md, "no source")
}

func TestExtractMarkdown_AnchorOnlyLinksFlattened(t *testing.T) {
	src := `<html><body><main>
<p><a href="#section">Jump</a> and <a href="javascript:void(0)">Click</a></p>
</main></body></html>`

	md, _, _, err := ExtractMarkdown(src)
	require.NoError(t, err)
	assert.Contains(t, md, "Jump")
	assert.Contains(t, md, "Click")
	assert.NotContains(t, md, "#section")
	assert.NotContains(t, md, "javascript:")
}
