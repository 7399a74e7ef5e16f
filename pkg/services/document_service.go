package services

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/kurt-labs/kurt/ent"
	"github.com/kurt-labs/kurt/ent/document"
	"github.com/kurt-labs/kurt/pkg/models"
)

// DocumentService serves the canonical documents table.
type DocumentService struct {
	client *ent.Client
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(client *ent.Client) *DocumentService {
	return &DocumentService{client: client}
}

// ListDocuments returns documents matching an optional search term (title,
// description, or source URL) and source type.
func (s *DocumentService) ListDocuments(ctx context.Context, search, sourceType string, limit, offset int) ([]models.DocumentSummary, int, error) {
	query := s.client.Document.Query()

	if search != "" {
		query = query.Where(document.Or(
			document.TitleContainsFold(search),
			document.DescriptionContainsFold(search),
			document.SourceURLContainsFold(search),
		))
	}
	if sourceType != "" {
		query = query.Where(document.SourceTypeEQ(document.SourceType(sourceType)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting documents: %w", err)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	docs, err := query.
		Order(document.ByUpdatedAt(sql.OrderDesc())).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("listing documents: %w", err)
	}

	out := make([]models.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		out = append(out, documentSummary(doc))
	}
	return out, total, nil
}

// GetDocument returns one document.
func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (*models.DocumentSummary, error) {
	doc, err := s.client.Document.Get(ctx, documentID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", documentID, err)
	}
	summary := documentSummary(doc)
	return &summary, nil
}

func documentSummary(doc *ent.Document) models.DocumentSummary {
	summary := models.DocumentSummary{
		DocumentID: doc.ID,
		SourceURL:  doc.SourceURL,
		SourceType: string(doc.SourceType),
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
	if doc.Title != nil {
		summary.Title = *doc.Title
	}
	if doc.Description != nil {
		summary.Description = *doc.Description
	}
	if doc.ContentPath != nil {
		summary.ContentPath = *doc.ContentPath
	}
	summary.Indexed = doc.ContentHash != nil && doc.IndexedWithHash != nil &&
		*doc.ContentHash == *doc.IndexedWithHash
	return summary
}
