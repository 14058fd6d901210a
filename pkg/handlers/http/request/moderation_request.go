package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrContentRequired = errors.New("content is required")

// ContentList accepts either a single string or a list of strings.
type ContentList []string

func (c *ContentList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*c = ContentList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("content must be a string or a list of strings: %w", err)
	}
	*c = many
	return nil
}

type ModerationRequest struct {
	Content                 ContentList `json:"content"`
	ContentType             string      `json:"content_type,omitempty"`
	ModerationType          string      `json:"moderation_type,omitempty"`
	Providers               []string    `json:"providers,omitempty"`
	IncludeOriginalResponse bool        `json:"include_original_response,omitempty"`
}

func (r *ModerationRequest) Validate() error {
	for _, c := range r.Content {
		if strings.TrimSpace(c) != "" {
			return nil
		}
	}
	return ErrContentRequired
}

type ModerationBatchRequest struct {
	Contents                []string `json:"contents"`
	ModerationType          string   `json:"moderation_type,omitempty"`
	IncludeOriginalResponse bool     `json:"include_original_response,omitempty"`
}

func (r *ModerationBatchRequest) Validate() error {
	if len(r.Contents) == 0 {
		return errors.New("contents must not be empty")
	}
	return nil
}
