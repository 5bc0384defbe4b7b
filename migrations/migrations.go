package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddNamedMigrationContext("00001_create_media_assets.go", upMediaAssets, downMediaAssets)
}

func upMediaAssets(ctx context.Context, tx *sql.Tx) error {
	createMediaAssets := `
	CREATE TABLE IF NOT EXISTS media_assets (
		public_id VARCHAR(255) PRIMARY KEY,
		original_filename VARCHAR(255),
		url VARCHAR(1024) NOT NULL,
		secure_url VARCHAR(1024) NOT NULL,
		resource_type VARCHAR(10) NOT NULL,
		format VARCHAR(20),
		width INTEGER,
		height INTEGER,
		bytes BIGINT NOT NULL,
		duration DOUBLE PRECISION,
		entity_type VARCHAR(20) NOT NULL,
		entity_id BIGINT,
		storage_backend VARCHAR(10) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	if _, err := tx.ExecContext(ctx, createMediaAssets); err != nil {
		return fmt.Errorf("could not create media_assets table: %w", err)
	}

	createIndex := `CREATE INDEX IF NOT EXISTS idx_media_entity ON media_assets (entity_type, entity_id);`
	if _, err := tx.ExecContext(ctx, createIndex); err != nil {
		return fmt.Errorf("could not create idx_media_entity: %w", err)
	}
	return nil
}

func downMediaAssets(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS media_assets;`); err != nil {
		return fmt.Errorf("could not drop media_assets table: %w", err)
	}
	return nil
}
