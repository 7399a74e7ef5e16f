package index

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurt-labs/kurt/ent"
)

func occ(statement, docID string, confidence float64, vec []float32) *occurrence {
	return &occurrence{
		documentID: docID,
		statement:  statement,
		claimType:  "fact",
		confidence: confidence,
		hash:       ClaimHash(statement, "fact", docID),
		vector:     vec,
	}
}

func TestCollectOccurrences(t *testing.T) {
	sections := []*ent.SectionExtraction{
		{
			SectionID:  "sec-1",
			DocumentID: "doc-1",
			Claims: []map[string]interface{}{
				{
					"statement":      "Python is interpreted",
					"type":           "fact",
					"confidence":     0.9,
					"entity_indices": []any{0, 2},
					"source_quote":   "Python is an interpreted language",
				},
				{"statement": "   ", "type": "fact"},           // empty after trim
				{"statement": "Django uses Python", "type": "opinion"}, // invalid type
			},
		},
		{
			SectionID:  "sec-2",
			DocumentID: "doc-1",
			Claims: []map[string]interface{}{
				{"statement": "Python is interpreted", "type": "fact", "confidence": 0.7},
			},
		},
	}

	got := collectOccurrences(sections)
	require.Len(t, got, 3)

	first := got[0]
	assert.Equal(t, "sec-1", first.sectionID)
	assert.Equal(t, "doc-1", first.documentID)
	assert.Equal(t, []int{0, 2}, first.entityIndices)
	assert.Equal(t, "Python is an interpreted language", first.sourceQuote)
	assert.Equal(t, ClaimHash("Python is interpreted", "fact", "doc-1"), first.hash)

	// Invalid claim type defaults to definition, which changes the hash.
	assert.Equal(t, "definition", got[1].claimType)
	assert.Equal(t, ClaimHash("Django uses Python", "definition", "doc-1"), got[1].hash)

	// Identical statement in another section of the same document shares the hash.
	assert.Equal(t, first.hash, got[2].hash)
}

func TestClusterOccurrences_Embedded(t *testing.T) {
	// Two near-identical vectors and one orthogonal one.
	a := occ("Python is interpreted", "doc-1", 0.7, []float32{1, 0, 0})
	b := occ("Python is an interpreted language", "doc-2", 0.9, []float32{0.999, 0.04, 0})
	c := occ("Rust is compiled", "doc-1", 0.8, []float32{0, 1, 0})

	clusters := clusterOccurrences([]*occurrence{a, b, c}, 0.88)
	require.Len(t, clusters, 2)

	sizes := map[int]int{}
	for _, cl := range clusters {
		sizes[len(cl)]++
	}
	assert.Equal(t, map[int]int{2: 1, 1: 1}, sizes)
}

func TestClusterOccurrences_IdenticalStatementsAlwaysCluster(t *testing.T) {
	vec := []float32{0.5, 0.5, 0.1}
	a := occ("Python is interpreted", "doc-1", 0.7, vec)
	b := occ("Python is interpreted", "doc-2", 0.9, vec)

	clusters := clusterOccurrences([]*occurrence{a, b}, 0.88)
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 2)
}

func TestClusterOccurrences_PrefixFallback(t *testing.T) {
	// No vectors at all: cluster by normalized 100-char prefix.
	a := occ("Python IS interpreted", "doc-1", 0.7, nil)
	b := occ("python is  interpreted", "doc-2", 0.9, nil)
	c := occ("Rust is compiled", "doc-1", 0.8, nil)

	clusters := clusterOccurrences([]*occurrence{a, b, c}, 0.88)
	require.Len(t, clusters, 2)
}

func TestClusterOccurrences_FallbackWhenAnyVectorMissing(t *testing.T) {
	// A single missing vector drops the whole batch to the prefix fallback;
	// mixing metrics would make thresholds meaningless.
	a := occ("Python is interpreted", "doc-1", 0.7, []float32{1, 0})
	b := occ("Totally different statement", "doc-2", 0.9, nil)

	clusters := clusterOccurrences([]*occurrence{a, b}, 0.88)
	assert.Len(t, clusters, 2)
}

func TestClusterOccurrences_Empty(t *testing.T) {
	assert.Nil(t, clusterOccurrences(nil, 0.88))
}

func TestStatementTruncationStaysValidUTF8(t *testing.T) {
	// 400 three-byte runes is 1200 bytes; the store cap falls mid-rune, and
	// a byte-offset cut would produce invalid UTF-8 that postgres rejects.
	long := strings.Repeat("統", 400)

	got := truncateUTF8(long, statementStoreCap)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, statementStoreCap-1, len(got), "backed up to the previous rune boundary")

	// Statements at or under the cap pass through untouched.
	assert.Equal(t, "Python is interpreted", truncateUTF8("Python is interpreted", statementStoreCap))
}

func TestDecideCluster_CreateNew(t *testing.T) {
	// Spec scenario: same claim in two documents, no existing claim. The
	// higher-confidence occurrence becomes canonical.
	d1 := occ("Python is interpreted", "doc-1", 0.7, []float32{1, 0})
	d2 := occ("Python is interpreted", "doc-2", 0.9, []float32{1, 0})

	cluster := []*occurrence{d1, d2}
	d := decideCluster(cluster, nil, 0.88)

	assert.Equal(t, "CREATE_NEW", d.decision)
	assert.Same(t, d2, d.canonical)
	assert.Equal(t, "Python is interpreted", d.canonicalStatement)
	assert.Empty(t, d.similarHashes)

	// Cluster is reordered canonical-first.
	assert.Same(t, d2, cluster[0])
	assert.Same(t, d1, cluster[1])
}

func TestDecideCluster_MergeWithExisting(t *testing.T) {
	// Spec scenario: an existing claim above the threshold wins; the cluster
	// merges and takes the existing statement as canonical.
	o := occ("Python is a popular language", "doc-3", 0.8, []float32{1, 0.05, 0})
	existing := []existingClaim{{
		hash:      "existing-hash-1",
		statement: "Python is a widely-used language",
		vector:    []float32{1, 0, 0},
	}}

	d := decideCluster([]*occurrence{o}, existing, 0.88)

	assert.Equal(t, "MERGE_WITH:existing-hash-1", d.decision)
	assert.Equal(t, "Python is a widely-used language", d.canonicalStatement)
	assert.Equal(t, []string{"existing-hash-1"}, d.similarHashes)
}

func TestDecideCluster_ExistingBelowThresholdIgnored(t *testing.T) {
	o := occ("Python is interpreted", "doc-1", 0.8, []float32{1, 0, 0})
	existing := []existingClaim{{
		hash:      "existing-hash-1",
		statement: "Rust is compiled",
		vector:    []float32{0, 1, 0},
	}}

	d := decideCluster([]*occurrence{o}, existing, 0.88)
	assert.Equal(t, "CREATE_NEW", d.decision)
	assert.Empty(t, d.similarHashes)
}

func TestDecideCluster_ConfidenceTieBreaksByHash(t *testing.T) {
	a := occ("Python is interpreted", "doc-1", 0.8, []float32{1, 0})
	b := occ("Python is interpreted", "doc-2", 0.8, []float32{1, 0})

	want := a
	if b.hash < a.hash {
		want = b
	}

	d := decideCluster([]*occurrence{a, b}, nil, 0.88)
	assert.Same(t, want, d.canonical)

	// Same result regardless of input order.
	d2 := decideCluster([]*occurrence{b, a}, nil, 0.88)
	assert.Same(t, want, d2.canonical)
}

func TestSimilarExisting_BestMatchFirst(t *testing.T) {
	o := occ("Python is interpreted", "doc-1", 0.8, []float32{1, 0, 0})
	existing := []existingClaim{
		{hash: "weak", statement: "s1", vector: []float32{0.92, 0.4, 0}},
		{hash: "strong", statement: "s2", vector: []float32{1, 0.01, 0}},
		{hash: "unrelated", statement: "s3", vector: []float32{0, 1, 0}},
	}

	got := similarExisting([]*occurrence{o}, existing, 0.88)
	require.Len(t, got, 2)
	assert.Equal(t, "strong", got[0].hash)
	assert.Equal(t, "weak", got[1].hash)
}

func TestSimilarExisting_UnembeddedOccurrencesSkipped(t *testing.T) {
	o := occ("Python is interpreted", "doc-1", 0.8, nil)
	existing := []existingClaim{{hash: "h", statement: "s", vector: []float32{1, 0}}}

	assert.Empty(t, similarExisting([]*occurrence{o}, existing, 0.88))
}
