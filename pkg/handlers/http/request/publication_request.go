package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PublishRequest struct {
	ContentID         string                 `json:"content_id"`
	Platform          string                 `json:"platform"`
	ScheduleTime      string                 `json:"schedule_time,omitempty"`
	AdditionalOptions map[string]interface{} `json:"additional_options,omitempty"`
}

func (r *PublishRequest) Validate() (uuid.UUID, *time.Time, error) {
	id, err := uuid.Parse(r.ContentID)
	if err != nil {
		return uuid.Nil, nil, errors.New("invalid content_id")
	}
	if strings.TrimSpace(r.Platform) == "" {
		return uuid.Nil, nil, errors.New("platform is required")
	}
	at, err := parseScheduleTime(r.ScheduleTime)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, at, nil
}

type DirectPublishRequest struct {
	Content           string                 `json:"content"`
	Platform          string                 `json:"platform"`
	Title             string                 `json:"title,omitempty"`
	MediaURLs         []string               `json:"media_urls,omitempty"`
	ScheduleTime      string                 `json:"schedule_time,omitempty"`
	AdditionalOptions map[string]interface{} `json:"additional_options,omitempty"`
}

func (r *DirectPublishRequest) Validate() (*time.Time, error) {
	if strings.TrimSpace(r.Content) == "" {
		return nil, ErrContentRequired
	}
	if strings.TrimSpace(r.Platform) == "" {
		return nil, errors.New("platform is required")
	}
	return parseScheduleTime(r.ScheduleTime)
}

func parseScheduleTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("schedule_time must be RFC3339: %w", err)
	}
	return &t, nil
}
