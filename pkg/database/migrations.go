package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over claim statements and document titles.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_claims_statement_gin
		ON claims USING gin(to_tsvector('english', statement))`)
	if err != nil {
		return fmt.Errorf("failed to create claims statement GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_documents_title_gin
		ON documents USING gin(to_tsvector('english', COALESCE(title, '') || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create documents title GIN index: %w", err)
	}

	return nil
}
