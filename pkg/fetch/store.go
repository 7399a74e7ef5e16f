package fetch

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Store is the on-disk content store rooted at the configured sources
// directory. Files are UTF-8 markdown; writes are atomic so readers never
// see partial content.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

var (
	disallowedPathChars = regexp.MustCompile(`[^a-zA-Z0-9._/\-]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
	safeIDReplacer      = strings.NewReplacer("/", "_", ":", "_", "?", "_")
)

// PathForURL derives the relative store path for a web document:
// <host>/<sanitized-path>.md, with the root URL mapping to <host>/index.md.
func PathForURL(sourceURL string) (string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return "", fmt.Errorf("parsing source url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("source url %q has no host", sourceURL)
	}

	p := strings.Trim(u.Path, "/")
	p = strings.TrimSuffix(p, ".html")
	p = strings.TrimSuffix(p, ".htm")
	p = disallowedPathChars.ReplaceAllString(p, "_")
	p = repeatedUnderscores.ReplaceAllString(p, "_")
	if p == "" {
		p = "index"
	}
	return filepath.Join(u.Host, p) + ".md", nil
}

// PathForID derives a hash-sharded relative path for documents without a
// usable URL: <md5[0:2]>/<md5[2:4]>/<safe-id>.md.
func PathForID(documentID string) string {
	sum := md5.Sum([]byte(documentID))
	h := hex.EncodeToString(sum[:])

	safe := truncateUTF8(safeIDReplacer.Replace(documentID), 100)
	return filepath.Join(h[0:2], h[2:4], safe) + ".md"
}

// truncateUTF8 caps s at max bytes, backing up so a multi-byte rune is
// never split.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// Write persists content at the given relative path, atomically. Parent
// directories are created as needed.
func (s *Store) Write(relPath, content string) error {
	full := filepath.Join(s.root, relPath)
	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating content dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".kurt-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}

// Read returns the content at a relative path.
func (s *Store) Read(relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, relPath))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// HashContent returns the hex SHA-256 of content, the dedup key for fetched
// documents.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
