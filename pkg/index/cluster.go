package index

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimgroup"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/embedding"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// statementStoreCap bounds the per-occurrence statement column; the
// canonical statement is kept full-length.
const statementStoreCap = 1000

// fallbackPrefixLen is the normalized-prefix key length used when no
// embedding provider is configured.
const fallbackPrefixLen = 100

// truncateUTF8 caps s at max bytes without splitting a rune; postgres
// rejects invalid UTF-8 outright.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// occurrence is one claim instance collected from a section extraction.
type occurrence struct {
	sectionID     string
	documentID    string
	statement     string
	claimType     string
	confidence    float64
	entityIndices []int
	sourceQuote   string
	hash          string
	vector        []float32
}

// ClusterTool is the cluster_claims workflow step: group claim occurrences
// by semantic similarity and decide, per cluster, whether it creates a new
// claim, merges into an existing one, or is a duplicate.
type ClusterTool struct {
	client   *ent.Client
	embedder embedding.Provider
	cfg      *config.Config
}

// NewClusterTool creates the step. embedder may be nil; clustering then
// falls back to normalized statement prefixes.
func NewClusterTool(client *ent.Client, embedder embedding.Provider, cfg *config.Config) *ClusterTool {
	return &ClusterTool{client: client, embedder: embedder, cfg: cfg}
}

// Name implements workflow.Tool.
func (t *ClusterTool) Name() string { return "cluster_claims" }

// Run implements workflow.Tool.
func (t *ClusterTool) Run(ctx context.Context, sc *workflow.StepContext, in workflow.ToolInput) (*workflow.ToolResult, error) {
	sections, err := t.client.SectionExtraction.Query().
		Where(
			sectionextraction.WorkflowID(sc.RunID),
			sectionextraction.StatusEQ(sectionextraction.StatusExtracted),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading section extractions: %w", err)
	}

	sc.Events.SetValue(ctx, "stage", "clustering_claims")

	if err := t.cleanupStale(ctx, sc.RunID, sections); err != nil {
		return nil, err
	}

	occurrences := collectOccurrences(sections)
	sc.Events.SetValue(ctx, "stage_total", len(occurrences))

	if err := t.embedOccurrences(ctx, occurrences); err != nil {
		return nil, err
	}

	threshold := in.GetFloat("similarity_threshold", t.cfg.Indexing.SimilarityThreshold)
	clusters := clusterOccurrences(occurrences, threshold)

	existing, err := t.loadExistingClaims(ctx, sc.RunID)
	if err != nil {
		return nil, err
	}

	// Re-running the step replaces its own staging rows.
	if _, err := t.client.ClaimGroup.Delete().
		Where(claimgroup.WorkflowID(sc.RunID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("clearing prior claim groups: %w", err)
	}

	rows := 0
	for i, cluster := range clusters {
		if sc.IsCanceled(ctx) || ctx.Err() != nil {
			break
		}
		clusterID := fmt.Sprintf("%s:cluster:%d", sc.RunID, i)
		n, err := t.persistCluster(ctx, sc.RunID, clusterID, cluster, existing, threshold)
		if err != nil {
			return nil, err
		}
		rows += n
		sc.Events.SetValue(ctx, "stage_current", rows)
	}

	return &workflow.ToolResult{
		Metadata: map[string]any{
			"claims":   len(occurrences),
			"clusters": len(clusters),
		},
	}, nil
}

// cleanupStale removes claims and evidence links left by earlier workflows
// for documents being re-indexed now. Entities stay; they are cross-document.
func (t *ClusterTool) cleanupStale(ctx context.Context, runID string, sections []*ent.SectionExtraction) error {
	docIDs := map[string]bool{}
	for _, s := range sections {
		docIDs[s.DocumentID] = true
	}
	for docID := range docIDs {
		if _, err := t.client.Claim.Delete().
			Where(claim.DocumentID(docID), claim.WorkflowIDNEQ(runID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("deleting stale claims for %s: %w", docID, err)
		}
		if _, err := t.client.DocumentEntity.Delete().
			Where(documententity.DocumentID(docID), documententity.WorkflowIDNEQ(runID)).
			Exec(ctx); err != nil {
			return fmt.Errorf("deleting stale evidence links for %s: %w", docID, err)
		}
	}
	return nil
}

// collectOccurrences flattens every staged claim, skipping empty statements
// and defaulting invalid claim types.
func collectOccurrences(sections []*ent.SectionExtraction) []*occurrence {
	var out []*occurrence
	for _, section := range sections {
		for _, c := range DecodeClaims(section.Claims) {
			statement := strings.TrimSpace(c.Statement)
			if statement == "" {
				continue
			}
			claimType := CanonicalClaimType(c.Type)
			out = append(out, &occurrence{
				sectionID:     section.SectionID,
				documentID:    section.DocumentID,
				statement:     statement,
				claimType:     claimType,
				confidence:    c.Confidence,
				entityIndices: c.EntityIndices,
				sourceQuote:   c.SourceQuote,
				hash:          ClaimHash(statement, claimType, section.DocumentID),
			})
		}
	}
	return out
}

func (t *ClusterTool) embedOccurrences(ctx context.Context, occurrences []*occurrence) error {
	if t.embedder == nil || len(occurrences) == 0 {
		return nil
	}
	const batchSize = 100
	for start := 0; start < len(occurrences); start += batchSize {
		end := start + batchSize
		if end > len(occurrences) {
			end = len(occurrences)
		}
		batch := occurrences[start:end]
		texts := make([]string, len(batch))
		for i, o := range batch {
			texts[i] = o.statement
		}
		vectors, err := t.embedder.Embed(ctx, texts)
		if err != nil {
			return fmt.Errorf("embedding claim statements: %w", err)
		}
		for i, o := range batch {
			o.vector = vectors[i]
		}
	}
	return nil
}

// clusterOccurrences runs single-linkage agglomerative clustering over
// cosine similarity. Without embeddings it groups by normalized statement
// prefix, which keeps the pipeline deterministic at reduced semantic power.
func clusterOccurrences(occurrences []*occurrence, threshold float64) [][]*occurrence {
	if len(occurrences) == 0 {
		return nil
	}

	embedded := true
	for _, o := range occurrences {
		if len(o.vector) == 0 {
			embedded = false
			break
		}
	}

	parent := make([]int, len(occurrences))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) { parent[find(a)] = find(b) }

	if embedded {
		for i := 0; i < len(occurrences); i++ {
			for j := i + 1; j < len(occurrences); j++ {
				if embedding.Cosine(occurrences[i].vector, occurrences[j].vector) >= threshold {
					union(i, j)
				}
			}
		}
	} else {
		byPrefix := map[string]int{}
		for i, o := range occurrences {
			key := truncateUTF8(NormalizeStatement(o.statement), fallbackPrefixLen)
			if first, ok := byPrefix[key]; ok {
				union(i, first)
			} else {
				byPrefix[key] = i
			}
		}
	}

	groups := map[int][]*occurrence{}
	var roots []int
	for i, o := range occurrences {
		root := find(i)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], o)
	}

	out := make([][]*occurrence, 0, len(roots))
	for _, root := range roots {
		out = append(out, groups[root])
	}
	return out
}

// existingClaim is a candidate from the claims table for cross-workflow
// merging.
type existingClaim struct {
	hash      string
	statement string
	vector    []float32
}

// loadExistingClaims pulls merge candidates: embedded claims attached to the
// entities this workflow resolved. Claims for documents in this workflow were
// already removed as stale.
func (t *ClusterTool) loadExistingClaims(ctx context.Context, runID string) ([]existingClaim, error) {
	resolutions, err := t.client.EntityResolution.Query().
		Where(entityresolution.WorkflowID(runID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading entity resolutions: %w", err)
	}
	if len(resolutions) == 0 {
		return nil, nil
	}

	entityIDs := make([]string, 0, len(resolutions))
	seen := map[string]bool{}
	for _, r := range resolutions {
		if !seen[r.ResolvedEntityID] {
			seen[r.ResolvedEntityID] = true
			entityIDs = append(entityIDs, r.ResolvedEntityID)
		}
	}

	claims, err := t.client.Claim.Query().
		Where(
			claim.SubjectEntityIDIn(entityIDs...),
			claim.EmbeddingNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading existing claims: %w", err)
	}

	out := make([]existingClaim, 0, len(claims))
	for _, c := range claims {
		out = append(out, existingClaim{
			hash:      c.ClaimHash,
			statement: c.Statement,
			vector:    embedding.Decode(c.Embedding),
		})
	}
	return out, nil
}

// clusterDecision is the outcome of decideCluster: the canonical occurrence,
// its decision, and the statement the cluster resolves to.
type clusterDecision struct {
	canonical          *occurrence
	decision           string
	canonicalStatement string
	similarHashes      []string
}

// decideCluster orders a cluster by confidence descending (claim_hash
// tie-break) and picks the cluster-wide decision: MERGE_WITH the best similar
// existing claim when one is above the threshold, CREATE_NEW otherwise. The
// cluster slice is sorted in place.
func decideCluster(cluster []*occurrence, existing []existingClaim, threshold float64) clusterDecision {
	sort.SliceStable(cluster, func(i, j int) bool {
		if cluster[i].confidence != cluster[j].confidence {
			return cluster[i].confidence > cluster[j].confidence
		}
		return cluster[i].hash < cluster[j].hash
	})

	similar := similarExisting(cluster, existing, threshold)

	d := clusterDecision{
		canonical:          cluster[0],
		decision:           "CREATE_NEW",
		canonicalStatement: cluster[0].statement,
	}
	if len(similar) > 0 {
		d.decision = "MERGE_WITH:" + similar[0].hash
		d.canonicalStatement = similar[0].statement
		d.similarHashes = make([]string, len(similar))
		for i, s := range similar {
			d.similarHashes[i] = s.hash
		}
	}
	return d
}

// persistCluster assigns decisions within one cluster and writes its
// claim_groups rows. Exactly one row per cluster carries CREATE_NEW or
// MERGE_WITH; the rest are DUPLICATE_OF the canonical occurrence.
func (t *ClusterTool) persistCluster(ctx context.Context, runID, clusterID string, cluster []*occurrence, existing []existingClaim, threshold float64) (int, error) {
	d := decideCluster(cluster, existing, threshold)

	for i, o := range cluster {
		decision := d.decision
		if i > 0 {
			decision = "DUPLICATE_OF:" + d.canonical.hash
		}

		statement := truncateUTF8(o.statement, statementStoreCap)

		create := t.client.ClaimGroup.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(runID).
			SetDocumentID(o.documentID).
			SetSectionID(o.sectionID).
			SetClaimHash(o.hash).
			SetClusterID(clusterID).
			SetClusterSize(len(cluster)).
			SetDecision(decision).
			SetStatement(statement).
			SetCanonicalStatement(d.canonicalStatement).
			SetClaimType(claimgroup.ClaimType(o.claimType)).
			SetConfidence(o.confidence).
			SetEntityIndices(o.entityIndices).
			SetSourceQuote(o.sourceQuote)
		if len(d.similarHashes) > 0 {
			create.SetSimilarExisting(d.similarHashes)
		}
		if err := create.Exec(ctx); err != nil {
			return 0, fmt.Errorf("saving claim group for %s: %w", o.hash, err)
		}
	}
	return len(cluster), nil
}

// similarExisting returns existing claims above the threshold for any member
// of the cluster, best match first.
func similarExisting(cluster []*occurrence, existing []existingClaim, threshold float64) []existingClaim {
	type scored struct {
		claim existingClaim
		score float64
	}
	best := map[string]scored{}
	var order []string

	for _, o := range cluster {
		if len(o.vector) == 0 {
			continue
		}
		for _, e := range existing {
			score := embedding.Cosine(o.vector, e.vector)
			if score < threshold {
				continue
			}
			if prev, ok := best[e.hash]; !ok || score > prev.score {
				if !ok {
					order = append(order, e.hash)
				}
				best[e.hash] = scored{claim: e, score: score}
			}
		}
	}

	out := make([]existingClaim, 0, len(order))
	sort.SliceStable(order, func(i, j int) bool {
		return best[order[i]].score > best[order[j]].score
	})
	for _, hash := range order {
		out = append(out, best[hash].claim)
	}
	return out
}
