package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// The section-extraction signature: one call per document section producing
// entities, relationships, and claims in a single structured response.

// ExtractedEntity is one entity mention found in a section.
type ExtractedEntity struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Quote      string  `json:"quote,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ExtractedRelationship links two entities by their indices in the
// section's entity list.
type ExtractedRelationship struct {
	SourceIndex int    `json:"source_index"`
	TargetIndex int    `json:"target_index"`
	Type        string `json:"type"`
	Quote       string `json:"quote,omitempty"`
}

// ExtractedClaim is one atomic assertion found in a section. EntityIndices
// reference the section's entity list; the first index is the subject.
type ExtractedClaim struct {
	Statement     string  `json:"statement"`
	Type          string  `json:"type"`
	Confidence    float64 `json:"confidence"`
	EntityIndices []int   `json:"entity_indices"`
	SourceQuote   string  `json:"source_quote,omitempty"`
}

// ExtractionResult is the full structured output for one section.
type ExtractionResult struct {
	Entities      []ExtractedEntity       `json:"entities"`
	Relationships []ExtractedRelationship `json:"relationships"`
	Claims        []ExtractedClaim        `json:"claims"`
	ContentType   string                  `json:"content_type"`
}

const extractionSystem = `You are a knowledge extraction engine. You read one section of a document and return a single JSON object, nothing else.`

const extractionPromptFormat = `Extract structured knowledge from the document section below.

Return a JSON object with exactly these keys:
- "entities": array of {"name", "type", "quote", "confidence"} where type is one of technology, person, product, topic, organization, concept, other
- "relationships": array of {"source_index", "target_index", "type", "quote"} where indices point into the entities array
- "claims": array of {"statement", "type", "confidence", "entity_indices", "source_quote"} where type is one of definition, capability, limitation, relationship, fact. A claim's statement must be a single atomic assertion. entity_indices point into the entities array; the first index is the claim's subject. Omit claims with no entity anchor.
- "content_type": one of prose, reference, tutorial, changelog, marketing, other

Section header: %s

Section content:
%s`

// ExtractSection runs the extraction signature against one section.
func (c *Client) ExtractSection(ctx context.Context, model, header, content string) (*ExtractionResult, error) {
	prompt := fmt.Sprintf(extractionPromptFormat, header, content)

	reply, err := c.Complete(ctx, model, extractionSystem, prompt)
	if err != nil {
		return nil, err
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(StripFences(reply)), &result); err != nil {
		return nil, fmt.Errorf("parsing extraction response: %w", err)
	}

	// Drop claims whose indices fall outside the entity list; downstream
	// stages index into it verbatim.
	valid := result.Claims[:0]
	for _, claim := range result.Claims {
		if strings.TrimSpace(claim.Statement) == "" || len(claim.EntityIndices) == 0 {
			continue
		}
		ok := true
		for _, idx := range claim.EntityIndices {
			if idx < 0 || idx >= len(result.Entities) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, claim)
		}
	}
	result.Claims = valid

	return &result, nil
}
