package request

import (
	"errors"
	"strings"
)

type GenerateContentRequest struct {
	ContentType       string                 `json:"content_type"`
	Prompt            string                 `json:"prompt"`
	Keywords          []string               `json:"keywords,omitempty"`
	Tone              string                 `json:"tone,omitempty"`
	MaxLength         int                    `json:"max_length,omitempty"`
	Language          string                 `json:"language,omitempty"`
	IncludeHashtags   bool                   `json:"include_hashtags,omitempty"`
	IncludeEmojis     bool                   `json:"include_emojis,omitempty"`
	TargetAudience    string                 `json:"target_audience,omitempty"`
	References        []string               `json:"references,omitempty"`
	AdditionalContext map[string]interface{} `json:"additional_context,omitempty"`
	Moderate          bool                   `json:"moderate,omitempty"`
}

func (r *GenerateContentRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return errors.New("prompt is required")
	}
	if strings.TrimSpace(r.ContentType) == "" {
		return errors.New("content_type is required")
	}
	if r.MaxLength < 0 {
		return errors.New("max_length must be positive")
	}
	return nil
}
