package moderation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/toxicity"
	"github.com/google/uuid"
)

var (
	ErrInvalidContentType    = errors.New("invalid content type")
	ErrInvalidModerationType = errors.New("invalid moderation type")
)

type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentAudio ContentType = "audio"
	ContentVideo ContentType = "video"
)

// ParseContentType defaults to text.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(strings.ToLower(strings.TrimSpace(s))) {
	case "", ContentText:
		return ContentText, nil
	case ContentImage:
		return ContentImage, nil
	case ContentAudio:
		return ContentAudio, nil
	case ContentVideo:
		return ContentVideo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
}

type Type string

const (
	TypeOpenAI      Type = toxicity.ProviderOpenAI
	TypeAnthropic   Type = toxicity.ProviderAnthropic
	TypeLocal       Type = toxicity.ProviderLocal
	TypeAzure       Type = toxicity.ProviderAzure
	TypeNeuralTrust Type = toxicity.ProviderNeuralTrust
	TypeBedrock     Type = toxicity.ProviderBedrock
	TypeCombined    Type = "combined"
)

// ParseType defaults to combined and accepts "detoxify" for the local classifier.
func ParseType(s string) (Type, error) {
	name := toxicity.CanonicalName(s)
	if name == "" {
		return TypeCombined, nil
	}
	switch t := Type(name); t {
	case TypeOpenAI, TypeAnthropic, TypeLocal, TypeAzure, TypeNeuralTrust, TypeBedrock, TypeCombined:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidModerationType, s)
}

type Request struct {
	Content        []string
	ContentType    ContentType
	ModerationType Type
	// Providers overrides the default preference list for combined moderation.
	Providers               []string
	IncludeOriginalResponse bool
}

type Result struct {
	ModerationID     uuid.UUID              `json:"moderation_id" msgpack:"moderation_id"`
	Flagged          bool                   `json:"flagged" msgpack:"flagged"`
	Categories       map[string]bool        `json:"categories" msgpack:"categories"`
	CategoryScores   map[string]float64     `json:"category_scores" msgpack:"category_scores"`
	Provider         string                 `json:"provider" msgpack:"provider"`
	ContentType      ContentType            `json:"content_type" msgpack:"content_type"`
	OriginalResponse map[string]interface{} `json:"original_response,omitempty" msgpack:"original_response,omitempty"`
	CreatedAt        time.Time              `json:"created_at" msgpack:"created_at"`
}
