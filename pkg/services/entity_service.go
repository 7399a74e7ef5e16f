package services

import (
	"context"
	"fmt"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/claim"
	"github.com/kurt-labs/kurt/ent/entity"
	"github.com/kurt-labs/kurt/pkg/models"
)

// EntityService serves the canonical entities table.
type EntityService struct {
	client *ent.Client
}

// NewEntityService creates a new EntityService.
func NewEntityService(client *ent.Client) *EntityService {
	return &EntityService{client: client}
}

// ListEntities returns entities matching a name search and optional type,
// merged-away entities excluded.
func (s *EntityService) ListEntities(ctx context.Context, search, entityType string, limit, offset int) ([]models.EntitySummary, int, error) {
	query := s.client.Entity.Query().
		Where(entity.MergedIntoIDIsNil())

	if search != "" {
		query = query.Where(entity.NameContainsFold(search))
	}
	if entityType != "" {
		query = query.Where(entity.EntityTypeEQ(entity.EntityType(entityType)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting entities: %w", err)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := query.
		Order(entity.ByName()).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing entities: %w", err)
	}

	out := make([]models.EntitySummary, 0, len(rows))
	for _, e := range rows {
		count, err := s.client.Claim.Query().
			Where(claim.SubjectEntityID(e.ID)).
			Count(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("counting claims for %s: %w", e.ID, err)
		}
		out = append(out, models.EntitySummary{
			EntityID:   e.ID,
			Name:       e.Name,
			EntityType: string(e.EntityType),
			Aliases:    e.Aliases,
			ClaimCount: count,
		})
	}
	return out, total, nil
}

// GetEntity returns one entity, following merge redirects to the surviving
// entity.
func (s *EntityService) GetEntity(ctx context.Context, entityID string) (*models.EntitySummary, error) {
	e, err := s.client.Entity.Get(ctx, entityID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading entity %s: %w", entityID, err)
	}

	// Follow at most one redirect hop; merges never chain.
	if e.MergedIntoID != nil {
		e, err = s.client.Entity.Get(ctx, *e.MergedIntoID)
		if err != nil {
			return nil, fmt.Errorf("following merge redirect from %s: %w", entityID, err)
		}
	}

	count, err := s.client.Claim.Query().
		Where(claim.SubjectEntityID(e.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting claims for %s: %w", e.ID, err)
	}

	return &models.EntitySummary{
		EntityID:   e.ID,
		Name:       e.Name,
		EntityType: string(e.EntityType),
		Aliases:    e.Aliases,
		ClaimCount: count,
	}, nil
}
