package migrations

import (
	"github.com/Setharkk/Skyent-dev/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250401_initial_schema",
		Name: "Create generation, moderation and publication tables",
		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS generated_contents (
					id           UUID PRIMARY KEY,
					content_type VARCHAR(50) NOT NULL,
					content      TEXT NOT NULL,
					prompt       TEXT NOT NULL,
					tone         VARCHAR(50),
					model_used   VARCHAR(100),
					title        TEXT,
					summary      TEXT,
					variants     TEXT[],
					hashtags     TEXT[],
					parameters   JSONB,
					metadata     JSONB,
					created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE TABLE IF NOT EXISTS moderation_results (
					id              UUID PRIMARY KEY,
					content         TEXT NOT NULL,
					content_type    VARCHAR(20) NOT NULL DEFAULT 'text',
					moderation_type VARCHAR(20) NOT NULL,
					flagged         BOOLEAN NOT NULL DEFAULT FALSE,
					categories      JSONB,
					category_scores JSONB,
					provider        VARCHAR(50),
					created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE INDEX IF NOT EXISTS idx_moderation_results_flagged ON moderation_results (flagged)`,
				`CREATE TABLE IF NOT EXISTS publications (
					id                 UUID PRIMARY KEY,
					content_id         UUID REFERENCES generated_contents(id) ON DELETE CASCADE,
					content            TEXT NOT NULL,
					title              TEXT,
					media_urls         TEXT[],
					platform           VARCHAR(20) NOT NULL,
					status             VARCHAR(20) NOT NULL,
					platform_post_id   VARCHAR(100),
					platform_post_url  TEXT,
					error_message      TEXT,
					schedule_time      TIMESTAMPTZ,
					additional_options JSONB,
					created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					published_at       TIMESTAMPTZ
				)`,
				`CREATE INDEX IF NOT EXISTS idx_publications_content_id ON publications (content_id)`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS publications, moderation_results, generated_contents`).Error
		},
	})
}
