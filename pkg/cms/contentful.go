package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kurt-labs/kurt/pkg/config"
)

// Contentful reads published entries through the Content Delivery API.
type Contentful struct {
	httpClient *http.Client
}

// NewContentful creates the adapter.
func NewContentful() *Contentful {
	return &Contentful{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

// Platform implements Adapter.
func (c *Contentful) Platform() string { return "contentful" }

func (c *Contentful) get(ctx context.Context, cfg config.CMSConfig, path string, out any) error {
	base := cfg.BaseURL
	if base == "" {
		base = "https://cdn.contentful.com"
	}
	endpoint := fmt.Sprintf("%s/spaces/%s%s", strings.TrimSuffix(base, "/"), cfg.Project, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("contentful status %d", resp.StatusCode)
	}
	return json.Unmarshal(data, out)
}

type contentfulEntry struct {
	Sys struct {
		ID          string `json:"id"`
		ContentType struct {
			Sys struct {
				ID string `json:"id"`
			} `json:"sys"`
		} `json:"contentType"`
	} `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type contentfulCollection struct {
	Items []contentfulEntry `json:"items"`
}

// List implements Adapter.
func (c *Contentful) List(ctx context.Context, cfg config.CMSConfig) ([]Entry, error) {
	var collection contentfulCollection
	if err := c.get(ctx, cfg, "/entries?limit=1000", &collection); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(collection.Items))
	for _, item := range collection.Items {
		title, _ := item.Fields["title"].(string)
		description, _ := item.Fields["description"].(string)
		entries = append(entries, Entry{ID: item.Sys.ID, Title: title, Description: description})
	}
	return entries, nil
}

// Fetch implements Adapter. String fields are concatenated into markdown in
// a stable field order; rich-text structures are flattened to their text.
func (c *Contentful) Fetch(ctx context.Context, cfg config.CMSConfig, documentID string) (string, map[string]any, error) {
	var entry contentfulEntry
	if err := c.get(ctx, cfg, "/entries/"+documentID, &entry); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	if title, _ := entry.Fields["title"].(string); title != "" {
		sb.WriteString("# " + title + "\n\n")
	}
	for _, key := range []string{"description", "body", "content", "text"} {
		switch v := entry.Fields[key].(type) {
		case string:
			sb.WriteString(v + "\n\n")
		case map[string]any:
			sb.WriteString(richTextPlain(v) + "\n\n")
		}
	}

	meta := map[string]any{"cms_type": entry.Sys.ContentType.Sys.ID}
	if title, _ := entry.Fields["title"].(string); title != "" {
		meta["title"] = title
	}
	return strings.TrimSpace(sb.String()), meta, nil
}

// richTextPlain flattens a Contentful rich-text document to its text nodes.
func richTextPlain(node map[string]any) string {
	var sb strings.Builder
	var walk func(map[string]any)
	walk = func(n map[string]any) {
		if value, _ := n["value"].(string); value != "" {
			sb.WriteString(value)
		}
		if nodeType, _ := n["nodeType"].(string); nodeType == "paragraph" || strings.HasPrefix(nodeType, "heading") {
			defer sb.WriteString("\n\n")
		}
		if content, ok := n["content"].([]any); ok {
			for _, child := range content {
				if m, ok := child.(map[string]any); ok {
					walk(m)
				}
			}
		}
	}
	walk(node)
	return strings.TrimSpace(sb.String())
}
