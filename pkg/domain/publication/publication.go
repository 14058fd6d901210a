package publication

import (
	"fmt"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const EntityName = "publication"

type Platform string

const (
	LinkedIn  Platform = "linkedin"
	Twitter   Platform = "twitter"
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
	Medium    Platform = "medium"
	YouTube   Platform = "youtube"
)

var Platforms = []Platform{LinkedIn, Twitter, Facebook, Instagram, Medium, YouTube}

func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, s)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusFailed    Status = "failed"
)

type Publication struct {
	ID                uuid.UUID         `json:"publication_id" gorm:"type:uuid;primaryKey"`
	ContentID         *uuid.UUID        `json:"content_id,omitempty" gorm:"type:uuid;index"`
	Content           string            `json:"content" gorm:"type:text;not null"`
	Title             string            `json:"title,omitempty" gorm:"type:text"`
	MediaURLs         types.StringArray `json:"media_urls,omitempty" gorm:"column:media_urls;type:text[]"`
	Platform          Platform          `json:"platform" gorm:"type:varchar(20);not null"`
	Status            Status            `json:"status" gorm:"type:varchar(20);not null"`
	PlatformPostID    string            `json:"platform_post_id,omitempty" gorm:"type:varchar(100)"`
	PlatformPostURL   string            `json:"platform_post_url,omitempty" gorm:"type:text"`
	ErrorMessage      string            `json:"error_message,omitempty" gorm:"type:text"`
	ScheduleTime      *time.Time        `json:"schedule_time,omitempty"`
	AdditionalOptions types.JSONMap     `json:"additional_options,omitempty" gorm:"type:jsonb"`
	CreatedAt         time.Time         `json:"created_at"`
	PublishedAt       *time.Time        `json:"published_at,omitempty"`
}

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}

func (p *Publication) TableName() string {
	return "publications"
}
