package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kurt-labs/kurt/pkg/config"
)

// Sanity reads published documents through the Sanity query API.
type Sanity struct {
	httpClient *http.Client
}

// NewSanity creates the adapter.
func NewSanity() *Sanity {
	return &Sanity{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

// Platform implements Adapter.
func (s *Sanity) Platform() string { return "sanity" }

type sanityQueryResponse struct {
	Result json.RawMessage `json:"result"`
}

func (s *Sanity) query(ctx context.Context, cfg config.CMSConfig, groq string, out any) error {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", cfg.Project)
	}
	endpoint := fmt.Sprintf("%s/v2021-10-21/data/query/%s?query=%s",
		strings.TrimSuffix(base, "/"), cfg.Dataset, url.QueryEscape(groq))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sanity query status %d", resp.StatusCode)
	}

	var envelope sanityQueryResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decoding sanity response: %w", err)
	}
	return json.Unmarshal(envelope.Result, out)
}

type sanityListing struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// List implements Adapter.
func (s *Sanity) List(ctx context.Context, cfg config.CMSConfig) ([]Entry, error) {
	var docs []sanityListing
	groq := `*[!(_id in path("drafts.**")) && defined(title)]{_id, title, description}`
	if err := s.query(ctx, cfg, groq, &docs); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, Entry{ID: d.ID, Title: d.Title, Description: d.Description})
	}
	return entries, nil
}

type sanityDocument struct {
	ID    string           `json:"_id"`
	Type  string           `json:"_type"`
	Title string           `json:"title"`
	Body  []map[string]any `json:"body"`
}

// Fetch implements Adapter. Portable-text body blocks are flattened to
// markdown.
func (s *Sanity) Fetch(ctx context.Context, cfg config.CMSConfig, documentID string) (string, map[string]any, error) {
	var docs []sanityDocument
	groq := fmt.Sprintf(`*[_id == %q]{_id, _type, title, body}`, documentID)
	if err := s.query(ctx, cfg, groq, &docs); err != nil {
		return "", nil, err
	}
	if len(docs) == 0 {
		return "", nil, fmt.Errorf("sanity document %s not found", documentID)
	}
	doc := docs[0]

	var sb strings.Builder
	if doc.Title != "" {
		sb.WriteString("# " + doc.Title + "\n\n")
	}
	for _, block := range doc.Body {
		sb.WriteString(portableTextBlock(block))
	}

	meta := map[string]any{"cms_type": doc.Type}
	if doc.Title != "" {
		meta["title"] = doc.Title
	}
	return strings.TrimSpace(sb.String()), meta, nil
}

// portableTextBlock renders one portable-text block as markdown.
func portableTextBlock(block map[string]any) string {
	if t, _ := block["_type"].(string); t != "block" {
		return ""
	}

	var text strings.Builder
	if children, ok := block["children"].([]any); ok {
		for _, child := range children {
			span, ok := child.(map[string]any)
			if !ok {
				continue
			}
			if s, _ := span["text"].(string); s != "" {
				text.WriteString(s)
			}
		}
	}
	body := text.String()
	if strings.TrimSpace(body) == "" {
		return ""
	}

	switch style, _ := block["style"].(string); style {
	case "h1":
		return "# " + body + "\n\n"
	case "h2":
		return "## " + body + "\n\n"
	case "h3":
		return "### " + body + "\n\n"
	case "h4":
		return "#### " + body + "\n\n"
	case "blockquote":
		return "> " + body + "\n\n"
	default:
		return body + "\n\n"
	}
}
