package fetch

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "plain path",
			url:  "https://example.com/a",
			want: "example.com/a.md",
		},
		{
			name: "root URL maps to index",
			url:  "https://example.com/",
			want: "example.com/index.md",
		},
		{
			name: "no trailing slash root",
			url:  "https://example.com",
			want: "example.com/index.md",
		},
		{
			name: "html extension stripped",
			url:  "https://example.com/docs/intro.html",
			want: "example.com/docs/intro.md",
		},
		{
			name: "htm extension stripped",
			url:  "https://example.com/old.htm",
			want: "example.com/old.md",
		},
		{
			name: "query string dropped",
			url:  "https://example.com/search?q=python&page=2",
			want: "example.com/search.md",
		},
		{
			name: "disallowed characters replaced",
			url:  "https://example.com/blog/hello%20world!",
			want: "example.com/blog/hello_world_.md",
		},
		{
			name: "repeated underscores collapsed",
			url:  "https://example.com/a  %20 b",
			want: "example.com/a_b.md",
		},
		{
			name: "nested path preserved",
			url:  "https://docs.example.com/guide/v2/setup",
			want: "docs.example.com/guide/v2/setup.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathForURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathForURL_NoHost(t *testing.T) {
	_, err := PathForURL("not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no host")
}

func TestPathForID(t *testing.T) {
	id := "doc-123"
	sum := md5.Sum([]byte(id))
	h := hex.EncodeToString(sum[:])

	got := PathForID(id)
	assert.Equal(t, filepath.Join(h[0:2], h[2:4], "doc-123")+".md", got)
}

func TestPathForID_SanitizesAndTruncates(t *testing.T) {
	got := PathForID("cms:site/page?v=1")
	assert.True(t, strings.HasSuffix(got, "cms_site_page_v=1.md"), got)

	long := strings.Repeat("x", 300)
	got = PathForID(long)
	base := filepath.Base(got)
	assert.Equal(t, 100+len(".md"), len(base))
}

func TestPathForID_MultibyteIDStaysValidUTF8(t *testing.T) {
	// 40 three-byte runes is 120 bytes; a byte-offset cut at 100 would land
	// mid-rune and postgres would reject the path as invalid UTF-8.
	long := strings.Repeat("日", 40)
	got := PathForID(long)

	base := strings.TrimSuffix(filepath.Base(got), ".md")
	assert.True(t, utf8.ValidString(base))
	assert.Equal(t, 99, len(base), "backed up to the previous rune boundary")
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 100))
	assert.Equal(t, "héll", truncateUTF8("héllo", 5))

	got := truncateUTF8(strings.Repeat("日", 10), 8)
	assert.Equal(t, strings.Repeat("日", 2), got)
	assert.True(t, utf8.ValidString(got))
}

func TestPathForID_Deterministic(t *testing.T) {
	assert.Equal(t, PathForID("same-id"), PathForID("same-id"))
	assert.NotEqual(t, PathForID("id-a"), PathForID("id-b"))
}

func TestStoreWriteRead(t *testing.T) {
	store := NewStore(t.TempDir())

	content := "# Überschrift\n\n日本語のコンテンツ — preserved.\n"
	require.NoError(t, store.Write("example.com/a.md", content))

	got, err := store.Read("example.com/a.md")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestStoreWrite_Overwrite(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Write("a/b.md", "first"))
	require.NoError(t, store.Write("a/b.md", "second"))

	got, err := store.Read("a/b.md")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestStoreWrite_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Write("example.com/a.md", "content"))

	entries, err := os.ReadDir(filepath.Join(dir, "example.com"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.md", entries[0].Name())
}

func TestHashContent(t *testing.T) {
	// SHA-256 of the empty string, a fixed vector.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashContent(""))

	assert.Equal(t, HashContent("same"), HashContent("same"))
	assert.NotEqual(t, HashContent("a"), HashContent("b"))
}
