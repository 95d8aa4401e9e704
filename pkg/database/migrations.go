package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// They back the content search surfaces (services.SearchService, served
// by GET /api/v1/search and recallctl search).
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for recall point content search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_recall_points_content_gin
		ON recall_points USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create recall point content GIN index: %w", err)
	}

	// GIN index for session transcript search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_session_messages_content_gin
		ON session_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create session message content GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// the Ent schema cannot express. These must match the constraints in
// 000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// one active rabbit-hole event per session
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS rabbitholeevent_session_id_one_active
		ON rabbithole_events (session_id)
		WHERE status = 'active'`)
	if err != nil {
		return fmt.Errorf("failed to create single-active rabbithole index: %w", err)
	}

	return nil
}
