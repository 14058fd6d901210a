package generation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPrompt        = errors.New("prompt is required")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrInvalidTone        = errors.New("invalid tone")
	ErrInvalidMaxLength   = errors.New("max_length must be positive")
	ErrGenerationFailed   = errors.New("content generation failed")
)

type ContentType string

const (
	LinkedInPost       ContentType = "linkedin_post"
	TwitterPost        ContentType = "twitter_post"
	BlogArticle        ContentType = "blog_article"
	Newsletter         ContentType = "newsletter"
	Email              ContentType = "email"
	ProductDescription ContentType = "product_description"
	PressRelease       ContentType = "press_release"
	MarketingCopy      ContentType = "marketing_copy"
	SocialMediaAd      ContentType = "social_media_ad"
	Other              ContentType = "other"
)

var contentTypes = []ContentType{
	LinkedInPost, TwitterPost, BlogArticle, Newsletter, Email,
	ProductDescription, PressRelease, MarketingCopy, SocialMediaAd, Other,
}

func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range contentTypes {
		if ct == known {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
}

type Tone string

const (
	Professional  Tone = "professional"
	Casual        Tone = "casual"
	Formal        Tone = "formal"
	Friendly      Tone = "friendly"
	Enthusiastic  Tone = "enthusiastic"
	Informative   Tone = "informative"
	Persuasive    Tone = "persuasive"
	Humorous      Tone = "humorous"
	Serious       Tone = "serious"
	Authoritative Tone = "authoritative"
)

var tones = []Tone{
	Professional, Casual, Formal, Friendly, Enthusiastic,
	Informative, Persuasive, Humorous, Serious, Authoritative,
}

// ParseTone accepts an empty tone.
func ParseTone(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return "", nil
	}
	for _, known := range tones {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTone, s)
}

type Parameters struct {
	ContentType       ContentType            `json:"content_type"`
	Prompt            string                 `json:"prompt"`
	Keywords          []string               `json:"keywords,omitempty"`
	Tone              Tone                   `json:"tone,omitempty"`
	MaxLength         int                    `json:"max_length,omitempty"`
	Language          string                 `json:"language,omitempty"`
	IncludeHashtags   bool                   `json:"include_hashtags"`
	IncludeEmojis     bool                   `json:"include_emojis"`
	TargetAudience    string                 `json:"target_audience,omitempty"`
	References        []string               `json:"references,omitempty"`
	AdditionalContext map[string]interface{} `json:"additional_context,omitempty"`
	// Moderate runs combined moderation on the generated text.
	Moderate bool `json:"moderate,omitempty"`
}

func (p *Parameters) validate() error {
	if strings.TrimSpace(p.Prompt) == "" {
		return ErrEmptyPrompt
	}
	ct, err := ParseContentType(string(p.ContentType))
	if err != nil {
		return err
	}
	p.ContentType = ct
	tone, err := ParseTone(string(p.Tone))
	if err != nil {
		return err
	}
	p.Tone = tone
	if p.MaxLength < 0 {
		return ErrInvalidMaxLength
	}
	if p.Language == "" {
		p.Language = "fr"
	}
	return nil
}

// reply is the structured answer requested from the model.
type reply struct {
	Content  string
	Variants []string
	Hashtags []string
	Title    string
	Summary  string
	Metadata map[string]interface{}
}
