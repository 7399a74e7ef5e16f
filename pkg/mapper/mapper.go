// Package mapper implements document discovery: sitemaps, site crawls,
// local folders, and CMS listings. Discovery upserts documents and records a
// per-workflow discovery row for each.
package mapper

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/discovery"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// Source is one discovery backend (sitemap, crawl, folder, cms).
type Source interface {
	// Method is the discovery method recorded on each document.
	Method() discovery.Method

	// Discover lists document references from the source identifier.
	Discover(ctx context.Context, identifier string, limit int) ([]Ref, error)
}

// Ref is one discovered document reference.
type Ref struct {
	SourceURL   string
	SourceType  document.SourceType
	Title       string
	Description string
}

// Tool is the map workflow step: run a discovery source and upsert the
// documents it finds.
type Tool struct {
	client  *ent.Client
	sources map[string]Source
}

// NewTool creates the map step with the given sources keyed by method name.
func NewTool(client *ent.Client, sources ...Source) *Tool {
	byName := make(map[string]Source, len(sources))
	for _, s := range sources {
		byName[string(s.Method())] = s
	}
	return &Tool{client: client, sources: byName}
}

// Name implements workflow.Tool.
func (t *Tool) Name() string { return "map" }

// Run implements workflow.Tool.
func (t *Tool) Run(ctx context.Context, sc *workflow.StepContext, in workflow.ToolInput) (*workflow.ToolResult, error) {
	method := in.GetString("method", "sitemap")
	identifier := in.GetString("source", "")
	limit := in.GetInt("limit", 0)
	if identifier == "" {
		return nil, fmt.Errorf("map step requires a source identifier")
	}

	source, ok := t.sources[method]
	if !ok {
		return nil, fmt.Errorf("unknown discovery method %q", method)
	}

	sc.Events.SetValue(ctx, "stage", "mapping")
	sc.Events.Log(ctx, sc.StepID, fmt.Sprintf("discovering documents from %s via %s", identifier, method))

	refs, err := source.Discover(ctx, identifier, limit)
	if err != nil {
		return nil, fmt.Errorf("discovering from %s: %w", identifier, err)
	}

	result := &workflow.ToolResult{Metadata: map[string]any{}}
	discovered := 0

	for i, ref := range refs {
		if sc.IsCanceled(ctx) || ctx.Err() != nil {
			break
		}

		docID, err := t.upsertDocument(ctx, ref)
		if err != nil {
			result.Errors = append(result.Errors, workflow.ItemError{
				ItemID: ref.SourceURL, Kind: "discovery_error", Message: err.Error(),
			})
			continue
		}

		if err := t.client.Discovery.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(sc.RunID).
			SetDocumentID(docID).
			SetMethod(source.Method()).
			SetStatus(discovery.StatusDiscovered).
			OnConflictColumns(discovery.FieldWorkflowID, discovery.FieldDocumentID).
			UpdateNewValues().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("recording discovery of %s: %w", docID, err)
		}

		discovered++
		result.OutputData = append(result.OutputData, workflow.Item{"document_id": docID})
		sc.Events.Progress(ctx, sc.StepID, "", i+1, len(refs), "")
	}

	result.Metadata["discovered"] = discovered
	return result, nil
}

// upsertDocument creates or refreshes the canonical document row for a
// discovered reference and returns its id.
func (t *Tool) upsertDocument(ctx context.Context, ref Ref) (string, error) {
	existing, err := t.client.Document.Query().
		Where(
			document.SourceURL(ref.SourceURL),
			document.SourceTypeEQ(ref.SourceType),
		).
		Only(ctx)
	if err == nil {
		update := t.client.Document.UpdateOneID(existing.ID)
		changed := false
		if ref.Title != "" && (existing.Title == nil || *existing.Title != ref.Title) {
			update.SetTitle(ref.Title)
			changed = true
		}
		if ref.Description != "" && (existing.Description == nil || *existing.Description != ref.Description) {
			update.SetDescription(ref.Description)
			changed = true
		}
		if changed {
			if err := update.Exec(ctx); err != nil {
				return "", err
			}
		}
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return "", err
	}

	docID := uuid.NewString()
	create := t.client.Document.Create().
		SetID(docID).
		SetSourceURL(ref.SourceURL).
		SetSourceType(ref.SourceType)
	if ref.Title != "" {
		create.SetTitle(ref.Title)
	}
	if ref.Description != "" {
		create.SetDescription(ref.Description)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent discovery of the same URL; use the winner.
			winner, qerr := t.client.Document.Query().
				Where(
					document.SourceURL(ref.SourceURL),
					document.SourceTypeEQ(ref.SourceType),
				).
				Only(ctx)
			if qerr != nil {
				return "", qerr
			}
			return winner.ID, nil
		}
		return "", err
	}
	return docID, nil
}

// ParseCMSIdentifier splits a platform:instance source argument.
func ParseCMSIdentifier(identifier string) (platform, instance string, err error) {
	parts := strings.SplitN(identifier, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("CMS identifier %q must be platform:instance", identifier)
	}
	return parts[0], parts[1], nil
}
