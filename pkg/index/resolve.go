package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/embedding"
	"github.com/kurt-labs/kurt/pkg/llm"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// ResolveTool is the resolve_claims workflow step: turn clustering decisions
// into claim rows, entity links, and a claim_resolution audit row per
// occurrence.
type ResolveTool struct {
	client   *ent.Client
	embedder embedding.Provider
	cfg      *config.Config
}

// NewResolveTool creates the step. embedder may be nil; new claims then
// carry no embedding and are invisible to future similarity merging.
func NewResolveTool(client *ent.Client, embedder embedding.Provider, cfg *config.Config) *ResolveTool {
	return &ResolveTool{client: client, embedder: embedder, cfg: cfg}
}

// Name implements workflow.Tool.
func (t *ResolveTool) Name() string { return "resolve_claims" }

// Run implements workflow.Tool.
func (t *ResolveTool) Run(ctx context.Context, sc *workflow.StepContext, in workflow.ToolInput) (*workflow.ToolResult, error) {
	groups, err := t.client.ClaimGroup.Query().
		Where(claimgroup.WorkflowID(sc.RunID)).
		Order(claimgroup.ByClusterID(), claimgroup.ByClaimHash()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading claim groups: %w", err)
	}

	sc.Events.SetValue(ctx, "stage", "resolving_claims")
	sc.Events.SetValue(ctx, "stage_total", len(groups))

	nameToID, err := t.entityNameMap(ctx, sc.RunID)
	if err != nil {
		return nil, err
	}
	sectionEntities, err := t.sectionEntityMap(ctx, sc.RunID)
	if err != nil {
		return nil, err
	}

	// Canonical rows first so duplicates can reference their claim ids.
	ordered := make([]*ent.ClaimGroup, 0, len(groups))
	for _, g := range groups {
		if !strings.HasPrefix(g.Decision, "DUPLICATE_OF:") {
			ordered = append(ordered, g)
		}
	}
	for _, g := range groups {
		if strings.HasPrefix(g.Decision, "DUPLICATE_OF:") {
			ordered = append(ordered, g)
		}
	}

	stats := map[claimresolution.ResolutionAction]int{}
	clusters := map[string]bool{}
	resolvedByHash := map[string]string{}
	auditWritten := map[string]bool{}

	for i, g := range ordered {
		if sc.IsCanceled(ctx) || ctx.Err() != nil {
			break
		}
		clusters[g.ClusterID] = true

		linked := resolveEntityIDs(g, sectionEntities, nameToID)
		action, resolvedID, metadata, err := t.dispatch(ctx, sc.RunID, g, linked, resolvedByHash)
		if err != nil {
			return nil, err
		}

		if resolvedID != "" {
			resolvedByHash[g.ClaimHash] = resolvedID
		}
		stats[action]++

		// One audit row per (workflow, hash). Canonicals are processed first,
		// so a later duplicate occurrence carrying the same hash must not
		// upsert over the canonical's row.
		if auditWritten[g.ClaimHash] {
			sc.Events.SetValue(ctx, "stage_current", i+1)
			continue
		}
		auditWritten[g.ClaimHash] = true

		create := t.client.ClaimResolution.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(sc.RunID).
			SetDocumentID(g.DocumentID).
			SetClaimHash(g.ClaimHash).
			SetDecision(g.Decision).
			SetResolutionAction(action).
			SetLinkedEntityIds(linked)
		if resolvedID != "" {
			create.SetResolvedClaimID(resolvedID)
		}
		if len(metadata) > 0 {
			create.SetResolutionMetadata(metadata)
		}
		if err := create.
			OnConflictColumns(claimresolution.FieldWorkflowID, claimresolution.FieldClaimHash).
			UpdateNewValues().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("saving claim resolution for %s: %w", g.ClaimHash, err)
		}

		sc.Events.SetValue(ctx, "stage_current", i+1)
	}

	if err := t.markIndexed(ctx, sc.RunID); err != nil {
		return nil, err
	}

	return &workflow.ToolResult{
		Metadata: map[string]any{
			"claims_processed": len(groups),
			"clusters_created": len(clusters),
			"created":          stats[claimresolution.ResolutionActionCreated],
			"merged":           stats[claimresolution.ResolutionActionMerged],
			"deduplicated":     stats[claimresolution.ResolutionActionDeduplicated],
			"skipped":          stats[claimresolution.ResolutionActionSkipped],
		},
	}, nil
}

// markIndexed stamps indexed_with_hash on every document this workflow
// extracted sections from; future delta fetches skip them until content
// changes.
func (t *ResolveTool) markIndexed(ctx context.Context, runID string) error {
	sections, err := t.client.SectionExtraction.Query().
		Where(sectionextraction.WorkflowID(runID)).
		Select(sectionextraction.FieldDocumentID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("loading indexed documents: %w", err)
	}

	seen := map[string]bool{}
	for _, docID := range sections {
		if seen[docID] {
			continue
		}
		seen[docID] = true

		doc, err := t.client.Document.Get(ctx, docID)
		if err != nil {
			return fmt.Errorf("loading document %s: %w", docID, err)
		}
		if doc.ContentHash == nil {
			continue
		}
		if err := t.client.Document.UpdateOneID(docID).
			SetIndexedWithHash(*doc.ContentHash).
			Exec(ctx); err != nil {
			return fmt.Errorf("marking document %s indexed: %w", docID, err)
		}
	}
	return nil
}

// entityNameMap loads this workflow's entity resolutions keyed by lowercased
// mention name.
func (t *ResolveTool) entityNameMap(ctx context.Context, runID string) (map[string]string, error) {
	resolutions, err := t.client.EntityResolution.Query().
		Where(entityresolution.WorkflowID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading entity resolutions: %w", err)
	}
	out := make(map[string]string, len(resolutions))
	for _, r := range resolutions {
		out[strings.ToLower(r.EntityName)] = r.ResolvedEntityID
	}
	return out, nil
}

// sectionEntityMap loads each section's local entity list, the target of
// claim entity_indices.
func (t *ResolveTool) sectionEntityMap(ctx context.Context, runID string) (map[string][]llm.ExtractedEntity, error) {
	sections, err := t.client.SectionExtraction.Query().
		Where(sectionextraction.WorkflowID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading section extractions: %w", err)
	}
	out := make(map[string][]llm.ExtractedEntity, len(sections))
	for _, s := range sections {
		out[s.SectionID] = DecodeEntities(s.Entities)
	}
	return out, nil
}

// resolveEntityIDs maps a claim's entity_indices through its section's
// entity list to resolved entity ids, dropping unresolvable indices.
func resolveEntityIDs(g *ent.ClaimGroup, sectionEntities map[string][]llm.ExtractedEntity, nameToID map[string]string) []string {
	entities := sectionEntities[g.SectionID]
	var out []string
	seen := map[string]bool{}
	for _, idx := range g.EntityIndices {
		if idx < 0 || idx >= len(entities) {
			continue
		}
		id, ok := nameToID[strings.ToLower(strings.TrimSpace(entities[idx].Name))]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// dispatch applies one clustering decision, returning the resolution action,
// the claim id resolved to (empty for skips), and any audit metadata.
func (t *ResolveTool) dispatch(ctx context.Context, runID string, g *ent.ClaimGroup, linked []string, resolvedByHash map[string]string) (claimresolution.ResolutionAction, string, map[string]interface{}, error) {
	switch {
	case g.Decision == "CREATE_NEW":
		return t.createClaim(ctx, runID, g, linked, nil)

	case strings.HasPrefix(g.Decision, "MERGE_WITH:"):
		existingHash := strings.TrimPrefix(g.Decision, "MERGE_WITH:")
		existing, err := t.client.Claim.Query().
			Where(claim.ClaimHash(existingHash)).
			Only(ctx)
		if ent.IsNotFound(err) {
			// The merge target vanished between clustering and now; a new
			// claim preserves the knowledge instead of dropping it.
			return t.createClaim(ctx, runID, g, linked, map[string]interface{}{
				"degraded_from": g.Decision,
			})
		}
		if err != nil {
			return "", "", nil, fmt.Errorf("loading merge target %s: %w", existingHash, err)
		}
		if err := t.linkEntities(ctx, existing.ID, linked); err != nil {
			return "", "", nil, err
		}
		return claimresolution.ResolutionActionMerged, existing.ID, nil, nil

	case strings.HasPrefix(g.Decision, "DUPLICATE_OF:"):
		canonicalHash := strings.TrimPrefix(g.Decision, "DUPLICATE_OF:")
		canonicalID, ok := resolvedByHash[canonicalHash]
		if !ok {
			// Canonical was skipped for lack of an entity anchor.
			return claimresolution.ResolutionActionSkipped, "", nil, nil
		}
		return claimresolution.ResolutionActionDeduplicated, canonicalID, nil, nil
	}
	return "", "", nil, fmt.Errorf("claim group %s: unrecognized decision %q", g.ID, g.Decision)
}

// createClaim inserts a claim anchored to its subject entity. Without an
// anchor the occurrence is skipped: unanchored assertions would pollute
// retrieval.
func (t *ResolveTool) createClaim(ctx context.Context, runID string, g *ent.ClaimGroup, linked []string, metadata map[string]interface{}) (claimresolution.ResolutionAction, string, map[string]interface{}, error) {
	if len(linked) == 0 {
		return claimresolution.ResolutionActionSkipped, "", metadata, nil
	}
	subjectID := linked[0]

	claimID := uuid.NewString()
	create := t.client.Claim.Create().
		SetID(claimID).
		SetClaimHash(g.ClaimHash).
		SetStatement(g.CanonicalStatement).
		SetClaimType(claim.ClaimType(g.ClaimType)).
		SetConfidence(g.Confidence).
		SetSubjectEntityID(subjectID).
		SetDocumentID(g.DocumentID).
		SetSectionID(g.SectionID).
		SetSourceQuote(g.SourceQuote).
		SetWorkflowID(runID)

	if vec := t.embedStatement(ctx, g.CanonicalStatement); vec != nil {
		create.SetEmbedding(vec)
	}

	if err := create.
		OnConflictColumns(claim.FieldClaimHash).
		UpdateNewValues().
		Exec(ctx); err != nil {
		return "", "", nil, fmt.Errorf("inserting claim %s: %w", g.ClaimHash, err)
	}

	// Resume may have upserted over an existing row with a different id.
	saved, err := t.client.Claim.Query().
		Where(claim.ClaimHash(g.ClaimHash)).
		Only(ctx)
	if err != nil {
		return "", "", nil, fmt.Errorf("reloading claim %s: %w", g.ClaimHash, err)
	}

	if err := t.linkEntities(ctx, saved.ID, linked); err != nil {
		return "", "", nil, err
	}
	return claimresolution.ResolutionActionCreated, saved.ID, metadata, nil
}

// linkEntities upserts claim_entity rows, growing the link set without
// duplicating existing links.
func (t *ResolveTool) linkEntities(ctx context.Context, claimID string, entityIDs []string) error {
	for _, entityID := range entityIDs {
		if err := t.client.ClaimEntity.Create().
			SetID(uuid.NewString()).
			SetClaimID(claimID).
			SetEntityID(entityID).
			OnConflictColumns(claimentity.FieldClaimID, claimentity.FieldEntityID).
			Ignore().
			Exec(ctx); err != nil {
			return fmt.Errorf("linking claim %s to entity %s: %w", claimID, entityID, err)
		}
	}
	return nil
}

// embedStatement embeds one canonical statement; failures degrade to a nil
// embedding rather than failing the claim.
func (t *ResolveTool) embedStatement(ctx context.Context, statement string) []byte {
	if t.embedder == nil {
		return nil
	}
	vecs, err := t.embedder.Embed(ctx, []string{statement})
	if err != nil || len(vecs) != 1 {
		return nil
	}
	return embedding.Encode(vecs[0])
}
