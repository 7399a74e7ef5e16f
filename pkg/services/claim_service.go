package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/claimentity"
	"github.com/kurt-labs/kurt/pkg/models"
)

// ClaimService serves the canonical claims table.
type ClaimService struct {
	client *ent.Client
}

// NewClaimService creates a new ClaimService.
func NewClaimService(client *ent.Client) *ClaimService {
	return &ClaimService{client: client}
}

// SearchClaims returns claims matching a statement search, optionally scoped
// to an entity (subject or linked) and claim type.
func (s *ClaimService) SearchClaims(ctx context.Context, search, entityID, claimType string, limit, offset int) ([]models.ClaimRecord, int, error) {
	query := s.client.Claim.Query()

	if search != "" {
		query = query.Where(claim.StatementContainsFold(search))
	}
	if claimType != "" {
		query = query.Where(claim.ClaimTypeEQ(claim.ClaimType(claimType)))
	}
	if entityID != "" {
		linkedIDs, err := s.client.ClaimEntity.Query().
			Where(claimentity.EntityID(entityID)).
			Select(claimentity.FieldClaimID).
			Strings(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("loading entity claim links: %w", err)
		}
		query = query.Where(claim.Or(
			claim.SubjectEntityID(entityID),
			claim.IDIn(linkedIDs...),
		))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting claims: %w", err)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := query.
		Order(claim.ByConfidence(sql.OrderDesc()), claim.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("searching claims: %w", err)
	}

	out := make([]models.ClaimRecord, 0, len(rows))
	for _, c := range rows {
		out = append(out, models.ClaimRecord{
			ClaimID:       c.ID,
			Statement:     c.Statement,
			ClaimType:     string(c.ClaimType),
			Confidence:    c.Confidence,
			SubjectEntity: c.SubjectEntityID,
			DocumentID:    c.DocumentID,
			SourceQuote:   c.SourceQuote,
		})
	}
	return out, total, nil
}
