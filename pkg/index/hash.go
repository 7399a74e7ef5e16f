// Package index implements the knowledge-extraction pipeline steps: section
// splitting and LLM extraction, entity resolution, claim clustering, and
// claim resolution.
package index

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// NormalizeStatement lowercases a claim statement and collapses all runs of
// whitespace to single spaces. Two statements that normalize equally are the
// same claim for hashing purposes.
func NormalizeStatement(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ClaimHash computes the identity hash of a claim occurrence. The document id
// is part of the hash, so identical statements in the same document share a
// hash across sections while the same statement in another document does not.
func ClaimHash(statement, claimType, documentID string) string {
	payload := NormalizeStatement(statement) + "|" + claimType + "|" + documentID
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// validClaimTypes mirrors the claims table enum.
var validClaimTypes = map[string]bool{
	"definition":   true,
	"capability":   true,
	"limitation":   true,
	"relationship": true,
	"fact":         true,
}

// CanonicalClaimType maps arbitrary extractor output onto the claim type
// enum, defaulting invalid values to definition.
func CanonicalClaimType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if validClaimTypes[t] {
		return t
	}
	return "definition"
}
