package migrations

import (
	"github.com/Setharkk/Skyent-dev/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250402_analysis_tables",
		Name: "Create content analysis tables",
		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE TABLE IF NOT EXISTS analyses (
					id               UUID PRIMARY KEY,
					content_hash     VARCHAR(64) NOT NULL UNIQUE,
					original_content TEXT NOT NULL,
					created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE TABLE IF NOT EXISTS keywords (
					id          UUID PRIMARY KEY,
					analysis_id UUID NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
					position    INTEGER NOT NULL,
					text        VARCHAR(100) NOT NULL,
					score       DOUBLE PRECISION NOT NULL,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE INDEX IF NOT EXISTS idx_keywords_analysis_id ON keywords (analysis_id)`,
				`CREATE TABLE IF NOT EXISTS summaries (
					id          UUID PRIMARY KEY,
					analysis_id UUID NOT NULL UNIQUE REFERENCES analyses(id) ON DELETE CASCADE,
					text        TEXT NOT NULL,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE TABLE IF NOT EXISTS sentiment_analyses (
					id             UUID PRIMARY KEY,
					analysis_id    UUID NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
					positive_score DOUBLE PRECISION NOT NULL,
					negative_score DOUBLE PRECISION NOT NULL,
					neutral_score  DOUBLE PRECISION NOT NULL,
					compound_score DOUBLE PRECISION NOT NULL,
					created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
				`CREATE INDEX IF NOT EXISTS idx_sentiment_analyses_analysis_id ON sentiment_analyses (analysis_id)`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS sentiment_analyses, summaries, keywords, analyses`).Error
		},
	})
}
