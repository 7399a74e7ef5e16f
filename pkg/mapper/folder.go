package mapper

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
)

// folderExtensions are the content file types folder discovery picks up.
var folderExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
}

// FolderSource discovers documents by walking a local directory tree.
type FolderSource struct{}

// NewFolderSource creates the source.
func NewFolderSource() *FolderSource { return &FolderSource{} }

// Method implements Source.
func (s *FolderSource) Method() discovery.Method { return discovery.MethodFolder }

// Discover implements Source. The identifier is the directory root; document
// source URLs are absolute file paths.
func (s *FolderSource) Discover(ctx context.Context, identifier string, limit int) ([]Ref, error) {
	root, err := filepath.Abs(identifier)
	if err != nil {
		return nil, fmt.Errorf("resolving folder %s: %w", identifier, err)
	}

	var refs []Ref
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !folderExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = d.Name()
		}
		refs = append(refs, Ref{
			SourceURL:  path,
			SourceType: document.SourceTypeFile,
			Title:      strings.TrimSuffix(rel, filepath.Ext(rel)),
		})
		if limit > 0 && len(refs) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return refs, nil
}
