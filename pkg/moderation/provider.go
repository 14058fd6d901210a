package moderation

import (
	"context"
	"strings"
)

const (
	LocalProviderName = "local"
	DefaultThreshold  = 0.5
)

// Provider classifies text into a normalized Verdict.
//
//go:generate mockery --name=Provider --dir=. --output=./mocks --filename=provider_mock.go --case=underscore --with-expecter
type Provider interface {
	Name() string
	// Available reports whether the provider is configured (credentials present).
	Available() bool
	Classify(ctx context.Context, texts []string) (*Verdict, error)
}

// JoinTexts is how single-block providers receive a list of texts.
func JoinTexts(texts []string) string {
	return strings.Join(texts, "\n")
}
