package content

import (
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EntityName = "generated_content"

// GeneratedContent is a stored generation result.
type GeneratedContent struct {
	ID          uuid.UUID         `json:"content_id" gorm:"type:uuid;primaryKey"`
	ContentType string            `json:"content_type" gorm:"type:varchar(50);not null"`
	Content     string            `json:"content" gorm:"type:text;not null"`
	Prompt      string            `json:"prompt" gorm:"type:text;not null"`
	Tone        string            `json:"tone,omitempty" gorm:"type:varchar(50)"`
	ModelUsed   string            `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	Title       string            `json:"title,omitempty" gorm:"type:text"`
	Summary     string            `json:"summary,omitempty" gorm:"type:text"`
	Variants    types.StringArray `json:"variants,omitempty" gorm:"type:text[]"`
	Hashtags    types.StringArray `json:"hashtags,omitempty" gorm:"type:text[]"`
	Parameters  types.JSONMap     `json:"parameters,omitempty" gorm:"type:jsonb"`
	Metadata    types.JSONMap     `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (c *GeneratedContent) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (c *GeneratedContent) TableName() string {
	return "generated_contents"
}
