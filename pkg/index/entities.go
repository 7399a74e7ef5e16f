package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/documententity"
	"github.com/kurt-labs/kurt/ent/entity"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/sectionextraction"
	"github.com/kurt-labs/kurt/pkg/config"
	"github.com/kurt-labs/kurt/pkg/embedding"
	"github.com/kurt-labs/kurt/pkg/workflow"
)

// nameSimilarityThreshold gates the levenshtein fallback when no embedding
// match is found. High on purpose: near-identical spellings only.
const nameSimilarityThreshold = 0.9

// versionRetries caps optimistic-concurrency retries per entity. A conflict
// past the cap fails that entity, never the workflow.
const versionRetries = 3

var validEntityTypes = map[string]bool{
	"technology":   true,
	"person":       true,
	"product":      true,
	"topic":        true,
	"organization": true,
	"concept":      true,
	"other":        true,
}

func canonicalEntityType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if validEntityTypes[t] {
		return t
	}
	return "concept"
}

// mention aggregates every occurrence of one entity name across the
// workflow's sections.
type mention struct {
	name       string
	entityType string
	confidence float64
	quote      string

	// documents carries one representative quote per document for the
	// document_entities evidence links.
	documents map[string]string

	vector []float32
}

// EntityTool is the resolve_entities workflow step: cluster entity mentions
// from section extractions and resolve each against the entities table.
type EntityTool struct {
	client   *ent.Client
	embedder embedding.Provider
	cfg      *config.Config
}

// NewEntityTool creates the step. embedder may be nil; resolution then falls
// back to exact, alias, and name-similarity matching.
func NewEntityTool(client *ent.Client, embedder embedding.Provider, cfg *config.Config) *EntityTool {
	return &EntityTool{client: client, embedder: embedder, cfg: cfg}
}

// Name implements workflow.Tool.
func (t *EntityTool) Name() string { return "resolve_entities" }

// Run implements workflow.Tool.
func (t *EntityTool) Run(ctx context.Context, sc *workflow.StepContext, in workflow.ToolInput) (*workflow.ToolResult, error) {
	sections, err := t.client.SectionExtraction.Query().
		Where(
			sectionextraction.WorkflowID(sc.RunID),
			sectionextraction.StatusEQ(sectionextraction.StatusExtracted),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading section extractions: %w", err)
	}

	mentions := collectMentions(sections)
	sc.Events.SetValue(ctx, "stage", "resolving_entities")
	sc.Events.SetValue(ctx, "stage_total", len(mentions))

	if err := t.embedMentions(ctx, mentions); err != nil {
		return nil, err
	}

	// Re-running this step replaces its own evidence links wholesale.
	if _, err := t.client.DocumentEntity.Delete().
		Where(documententity.WorkflowID(sc.RunID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("clearing prior evidence links: %w", err)
	}

	threshold := in.GetFloat("similarity_threshold", t.cfg.Indexing.SimilarityThreshold)
	candidates := newCandidateCache(t.client)

	result := &workflow.ToolResult{Metadata: map[string]any{}}
	var created, matched, merged int

	for i, m := range mentions {
		if sc.IsCanceled(ctx) || ctx.Err() != nil {
			break
		}

		entityID, action, score, err := t.resolveOne(ctx, candidates, m, threshold)
		if err != nil {
			result.Errors = append(result.Errors, workflow.ItemError{
				ItemID: m.name, Kind: "entity_resolution_error", Message: err.Error(),
			})
			continue
		}

		switch action {
		case entityresolution.ActionCreated:
			created++
		case entityresolution.ActionMatched:
			matched++
		case entityresolution.ActionMerged:
			merged++
		}

		if err := t.client.EntityResolution.Create().
			SetID(uuid.NewString()).
			SetWorkflowID(sc.RunID).
			SetEntityName(m.name).
			SetResolvedEntityID(entityID).
			SetAction(action).
			SetScore(score).
			OnConflictColumns(entityresolution.FieldWorkflowID, entityresolution.FieldEntityName).
			UpdateNewValues().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("saving entity resolution for %q: %w", m.name, err)
		}

		for docID, quote := range m.documents {
			if err := t.client.DocumentEntity.Create().
				SetID(uuid.NewString()).
				SetDocumentID(docID).
				SetEntityID(entityID).
				SetQuote(quote).
				SetConfidence(m.confidence).
				SetWorkflowID(sc.RunID).
				Exec(ctx); err != nil {
				return nil, fmt.Errorf("linking entity %q to document %s: %w", m.name, docID, err)
			}
		}

		result.OutputData = append(result.OutputData, workflow.Item{
			"entity_name": m.name,
			"entity_id":   entityID,
			"action":      string(action),
		})
		sc.Events.SetValue(ctx, "stage_current", i+1)
	}

	result.Metadata["mentions"] = len(mentions)
	result.Metadata["created"] = created
	result.Metadata["matched"] = matched
	result.Metadata["merged"] = merged
	return result, nil
}

// collectMentions aggregates extracted entities across sections, one mention
// per distinct (normalized name, type).
func collectMentions(sections []*ent.SectionExtraction) []*mention {
	byKey := map[string]*mention{}
	var order []string

	for _, section := range sections {
		for _, e := range DecodeEntities(section.Entities) {
			name := strings.TrimSpace(e.Name)
			if name == "" {
				continue
			}
			typ := canonicalEntityType(e.Type)
			key := strings.ToLower(name) + "|" + typ

			m, ok := byKey[key]
			if !ok {
				m = &mention{name: name, entityType: typ, documents: map[string]string{}}
				byKey[key] = m
				order = append(order, key)
			}
			if e.Confidence > m.confidence {
				m.confidence = e.Confidence
				m.name = name
			}
			if m.quote == "" {
				m.quote = e.Quote
			}
			if _, seen := m.documents[section.DocumentID]; !seen {
				m.documents[section.DocumentID] = e.Quote
			}
		}
	}

	out := make([]*mention, 0, len(order))
	for _, key := range order {
		out = append(out, byKey[key])
	}
	return out
}

// embedMentions attaches name embeddings in one batch; a nil provider leaves
// vectors empty and resolution degrades to lexical matching.
func (t *EntityTool) embedMentions(ctx context.Context, mentions []*mention) error {
	if t.embedder == nil || len(mentions) == 0 {
		return nil
	}
	names := make([]string, len(mentions))
	for i, m := range mentions {
		names[i] = m.name
	}
	vectors, err := t.embedder.Embed(ctx, names)
	if err != nil {
		return fmt.Errorf("embedding entity names: %w", err)
	}
	for i, m := range mentions {
		m.vector = vectors[i]
	}
	return nil
}

// candidateCache loads each entity type's candidates once per step run.
type candidateCache struct {
	client *ent.Client
	byType map[string][]*ent.Entity
}

func newCandidateCache(client *ent.Client) *candidateCache {
	return &candidateCache{client: client, byType: map[string][]*ent.Entity{}}
}

func (c *candidateCache) get(ctx context.Context, entityType string) ([]*ent.Entity, error) {
	if cached, ok := c.byType[entityType]; ok {
		return cached, nil
	}
	all, err := c.client.Entity.Query().
		Where(
			entity.EntityTypeEQ(entity.EntityType(entityType)),
			entity.MergedIntoIDIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	c.byType[entityType] = all
	return all, nil
}

func (c *candidateCache) add(entityType string, e *ent.Entity) {
	c.byType[entityType] = append(c.byType[entityType], e)
}

// resolveOne matches a mention against existing entities (exact name, alias,
// embedding, then name similarity) or creates a new entity.
func (t *EntityTool) resolveOne(ctx context.Context, candidates *candidateCache, m *mention, threshold float64) (string, entityresolution.Action, float64, error) {
	existing, err := candidates.get(ctx, m.entityType)
	if err != nil {
		return "", "", 0, err
	}

	if e := matchLexical(existing, m.name); e != nil {
		return e.ID, entityresolution.ActionMatched, 1, nil
	}

	if len(m.vector) > 0 {
		if e, score := matchEmbedding(existing, m.vector, threshold); e != nil {
			if err := t.addAlias(ctx, e, m.name); err != nil {
				return "", "", 0, err
			}
			return e.ID, entityresolution.ActionMerged, score, nil
		}
	}

	if e, score := matchName(existing, m.name); e != nil {
		if err := t.addAlias(ctx, e, m.name); err != nil {
			return "", "", 0, err
		}
		return e.ID, entityresolution.ActionMerged, score, nil
	}

	created, err := t.createEntity(ctx, m)
	if err != nil {
		return "", "", 0, err
	}
	if created.action == entityresolution.ActionCreated {
		candidates.add(m.entityType, created.entity)
	}
	return created.entity.ID, created.action, created.score, nil
}

func matchLexical(existing []*ent.Entity, name string) *ent.Entity {
	for _, e := range existing {
		if strings.EqualFold(e.Name, name) {
			return e
		}
		for _, alias := range e.Aliases {
			if strings.EqualFold(alias, name) {
				return e
			}
		}
	}
	return nil
}

func matchEmbedding(existing []*ent.Entity, vector []float32, threshold float64) (*ent.Entity, float64) {
	var best *ent.Entity
	bestScore := threshold
	for _, e := range existing {
		if len(e.Embedding) == 0 {
			continue
		}
		score := embedding.Cosine(vector, embedding.Decode(e.Embedding))
		if score >= bestScore {
			best, bestScore = e, score
		}
	}
	return best, bestScore
}

func matchName(existing []*ent.Entity, name string) (*ent.Entity, float64) {
	var best *ent.Entity
	bestScore := nameSimilarityThreshold
	for _, e := range existing {
		score := nameSimilarity(name, e.Name)
		if score >= bestScore {
			best, bestScore = e, score
		}
	}
	return best, bestScore
}

// nameSimilarity is 1 minus the normalized levenshtein distance.
func nameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// addAlias records a mention spelling on an existing entity under optimistic
// concurrency: the update only lands if the version is unchanged, retried up
// to versionRetries times.
func (t *EntityTool) addAlias(ctx context.Context, e *ent.Entity, alias string) error {
	for attempt := 0; attempt < versionRetries; attempt++ {
		for _, existing := range append([]string{e.Name}, e.Aliases...) {
			if strings.EqualFold(existing, alias) {
				return nil
			}
		}

		n, err := t.client.Entity.Update().
			Where(entity.ID(e.ID), entity.Version(e.Version)).
			SetAliases(append(e.Aliases, alias)).
			SetVersion(e.Version + 1).
			Save(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			e.Aliases = append(e.Aliases, alias)
			e.Version++
			return nil
		}

		// Lost the race; reload and retry.
		reloaded, err := t.client.Entity.Get(ctx, e.ID)
		if err != nil {
			return err
		}
		*e = *reloaded
	}
	return fmt.Errorf("entity %s: version conflict persisted after %d attempts", e.ID, versionRetries)
}

type createOutcome struct {
	entity *ent.Entity
	action entityresolution.Action
	score  float64
}

// createEntity inserts a new entity; a unique-constraint race with another
// workflow resolves to the winner's row.
func (t *EntityTool) createEntity(ctx context.Context, m *mention) (*createOutcome, error) {
	e := &ent.Entity{
		ID:         uuid.NewString(),
		Name:       m.name,
		EntityType: entity.EntityType(m.entityType),
		Aliases:    []string{},
		Version:    1,
	}

	create := t.client.Entity.Create().
		SetID(e.ID).
		SetName(e.Name).
		SetEntityType(e.EntityType)
	if len(m.vector) > 0 {
		e.Embedding = embedding.Encode(m.vector)
		create.SetEmbedding(e.Embedding)
	}

	if err := create.Exec(ctx); err != nil {
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		winner, qerr := t.client.Entity.Query().
			Where(
				entity.NameEqualFold(m.name),
				entity.EntityTypeEQ(entity.EntityType(m.entityType)),
			).
			Only(ctx)
		if qerr != nil {
			return nil, fmt.Errorf("resolving create race for %q: %w", m.name, qerr)
		}
		return &createOutcome{entity: winner, action: entityresolution.ActionMatched, score: 1}, nil
	}
	return &createOutcome{entity: e, action: entityresolution.ActionCreated, score: 1}, nil
}
