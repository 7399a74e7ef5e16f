package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Python Is Interpreted", "python is interpreted"},
		{"collapses internal whitespace", "python   is\t\tinterpreted", "python is interpreted"},
		{"trims edges", "  python is interpreted \n", "python is interpreted"},
		{"newlines collapse", "python\nis\ninterpreted", "python is interpreted"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"unicode case folds", "PostgreSQL ÜBER Alles", "postgresql über alles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatement(tt.input))
		})
	}
}

func TestClaimHash(t *testing.T) {
	// Normalization-equal statements share a hash within a document.
	a := ClaimHash("Python is interpreted", "fact", "doc-1")
	b := ClaimHash("python   IS\tinterpreted", "fact", "doc-1")
	assert.Equal(t, a, b)

	// Same statement in another document hashes differently.
	other := ClaimHash("Python is interpreted", "fact", "doc-2")
	assert.NotEqual(t, a, other)

	// Claim type participates in the hash.
	defn := ClaimHash("Python is interpreted", "definition", "doc-1")
	assert.NotEqual(t, a, defn)

	// 64 hex chars of SHA-256.
	assert.Len(t, a, 64)
}

func TestClaimHash_ConformanceVector(t *testing.T) {
	// Locks the cross-component hash contract: sha256 over
	// "python is interpreted|fact|doc-1".
	assert.Equal(t,
		"a5fa0f9b6fabb54b8cac6c56277119e76ecd26b762a0f21697710dffe927b531",
		ClaimHash("Python is interpreted", "fact", "doc-1"))
}

func TestCanonicalClaimType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"definition", "definition"},
		{"capability", "capability"},
		{"limitation", "limitation"},
		{"relationship", "relationship"},
		{"fact", "fact"},
		{"FACT", "fact"},
		{"  fact  ", "fact"},
		{"opinion", "definition"},
		{"", "definition"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalClaimType(tt.input), "input %q", tt.input)
	}
}
