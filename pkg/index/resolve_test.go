package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimresolution"
	"github.com/kurt-labs/kurt/ent/entityresolution"
	"github.com/kurt-labs/kurt/ent/workflowrun"
	"github.com/kurt-labs/kurt/pkg/llm"
	"github.com/kurt-labs/kurt/pkg/workflow"
	util "github.com/kurt-labs/kurt/test/util"
)

func TestResolveEntityIDs(t *testing.T) {
	sectionEntities := map[string][]llm.ExtractedEntity{
		"sec-1": {
			{Name: "Python"},
			{Name: "Django"},
			{Name: "Unresolvable"},
		},
	}
	nameToID := map[string]string{
		"python": "ent-python",
		"django": "ent-django",
	}

	tests := []struct {
		name  string
		group *ent.ClaimGroup
		want  []string
	}{
		{
			name:  "indices map through names to ids in order",
			group: &ent.ClaimGroup{SectionID: "sec-1", EntityIndices: []int{1, 0}},
			want:  []string{"ent-django", "ent-python"},
		},
		{
			name:  "unresolved names dropped",
			group: &ent.ClaimGroup{SectionID: "sec-1", EntityIndices: []int{0, 2}},
			want:  []string{"ent-python"},
		},
		{
			name:  "out of range indices dropped",
			group: &ent.ClaimGroup{SectionID: "sec-1", EntityIndices: []int{-1, 0, 99}},
			want:  []string{"ent-python"},
		},
		{
			name:  "duplicate resolutions collapse",
			group: &ent.ClaimGroup{SectionID: "sec-1", EntityIndices: []int{0, 0, 1}},
			want:  []string{"ent-python", "ent-django"},
		},
		{
			name:  "unknown section yields nothing",
			group: &ent.ClaimGroup{SectionID: "sec-ghost", EntityIndices: []int{0}},
			want:  nil,
		},
		{
			name:  "no indices yields nothing",
			group: &ent.ClaimGroup{SectionID: "sec-1"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveEntityIDs(tt.group, sectionEntities, nameToID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEntityIDs_NameLookupIsCaseInsensitive(t *testing.T) {
	sectionEntities := map[string][]llm.ExtractedEntity{
		"sec-1": {{Name: "  PostgreSQL  "}},
	}
	nameToID := map[string]string{"postgresql": "ent-pg"}

	got := resolveEntityIDs(&ent.ClaimGroup{SectionID: "sec-1", EntityIndices: []int{0}}, sectionEntities, nameToID)
	assert.Equal(t, []string{"ent-pg"}, got)
}

func TestResolveRun_DuplicateWithSameHashKeepsCanonicalAudit(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	const wfID = "wf-resolve"

	require.NoError(t, client.WorkflowRun.Create().
		SetID(wfID).
		SetWorkflowName("index").
		SetStatus(workflowrun.StatusRunning).
		Exec(ctx))
	require.NoError(t, client.Document.Create().
		SetID("doc-1").
		SetSourceURL("https://example.com/python").
		Exec(ctx))
	require.NoError(t, client.Entity.Create().
		SetID("ent-python").
		SetName("Python").
		Exec(ctx))
	require.NoError(t, client.EntityResolution.Create().
		SetID("res-1").
		SetWorkflowID(wfID).
		SetEntityName("Python").
		SetResolvedEntityID("ent-python").
		SetAction(entityresolution.ActionMatched).
		Exec(ctx))

	// The same statement extracted from two sections of one document shares
	// one claim hash; clustering marks the second occurrence a duplicate of
	// the first.
	hash := ClaimHash("Python is interpreted", "fact", "doc-1")
	for i, sectionID := range []string{"doc-1:s0", "doc-1:s1"} {
		require.NoError(t, client.SectionExtraction.Create().
			SetID(sectionID).
			SetWorkflowID(wfID).
			SetDocumentID("doc-1").
			SetSectionID(sectionID).
			SetSectionIndex(i).
			SetContent("Python is interpreted.").
			SetEntities([]map[string]interface{}{{"name": "Python"}}).
			Exec(ctx))
	}
	decisions := []string{"CREATE_NEW", "DUPLICATE_OF:" + hash}
	for i, sectionID := range []string{"doc-1:s0", "doc-1:s1"} {
		require.NoError(t, client.ClaimGroup.Create().
			SetID(sectionID+"-g").
			SetWorkflowID(wfID).
			SetDocumentID("doc-1").
			SetSectionID(sectionID).
			SetClaimHash(hash).
			SetClusterID("cluster-0").
			SetClusterSize(2).
			SetDecision(decisions[i]).
			SetStatement("Python is interpreted").
			SetCanonicalStatement("Python is interpreted").
			SetClaimType("fact").
			SetConfidence(0.9).
			SetEntityIndices([]int{0}).
			Exec(ctx))
	}

	tool := NewResolveTool(client, nil, nil)
	sc := &workflow.StepContext{
		RunID:  wfID,
		StepID: "resolve",
		Events: workflow.NewEmitter(wfID, client, nil),
	}
	res, err := tool.Run(ctx, sc, workflow.ToolInput{})
	require.NoError(t, err)

	// One claim, and the counting contract holds: created reflects actual
	// inserts.
	claims, err := client.Claim.Query().
		Where(claim.ClaimHash(hash)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, 1, res.Metadata["created"])
	assert.Equal(t, 1, res.Metadata["deduplicated"])
	assert.Equal(t, 2, res.Metadata["claims_processed"])

	// The duplicate occurrence shares the canonical's hash, so there is one
	// audit row and it still records the create, not the dedup.
	rows, err := client.ClaimResolution.Query().
		Where(
			claimresolution.WorkflowID(wfID),
			claimresolution.ClaimHash(hash),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, claimresolution.ResolutionActionCreated, rows[0].ResolutionAction)
	assert.Equal(t, claims[0].ID, rows[0].ResolvedClaimID)
}

func TestDecodeClaims_MalformedEntriesSkipped(t *testing.T) {
	raw := []map[string]interface{}{
		{"statement": "valid", "type": "fact", "confidence": 0.5},
		{"statement": 42}, // wrong type, dropped
	}

	got := DecodeClaims(raw)
	assert.Len(t, got, 1)
	assert.Equal(t, "valid", got[0].Statement)
}
