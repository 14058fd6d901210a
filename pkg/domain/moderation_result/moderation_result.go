package moderation_result

import (
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EntityName = "moderation_result"

type ModerationResult struct {
	ID             uuid.UUID      `json:"moderation_id" gorm:"type:uuid;primaryKey"`
	Content        string         `json:"content" gorm:"type:text;not null"`
	ContentType    string         `json:"content_type" gorm:"type:varchar(20);not null"`
	ModerationType string         `json:"moderation_type" gorm:"type:varchar(20);not null"`
	Flagged        bool           `json:"flagged" gorm:"not null"`
	Categories     types.BoolMap  `json:"categories" gorm:"type:jsonb"`
	CategoryScores types.FloatMap `json:"category_scores" gorm:"type:jsonb"`
	Provider       string         `json:"provider" gorm:"type:varchar(50)"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (m *ModerationResult) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (m *ModerationResult) TableName() string {
	return "moderation_results"
}
