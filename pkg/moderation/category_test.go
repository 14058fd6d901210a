package moderation_test

import (
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want moderation.Category
	}{
		{"sexual", moderation.CategorySexual},
		{"hate", moderation.CategoryHate},
		{"harassment", moderation.CategoryHarassment},
		{"self-harm", moderation.CategorySelfHarm},
		{"self_harm", moderation.CategorySelfHarm},
		{"Self-Harm/Intent", moderation.CategorySelfHarm},
		{"violence", moderation.CategoryViolence},
		{"violent", moderation.CategoryViolence},
		{"profanity", moderation.CategoryProfanity},
		{"profane", moderation.CategoryProfanity},
		{"toxicity", moderation.CategoryOther},
		{"severe_toxicity", moderation.CategoryOther},
		{"OBSCENE", moderation.CategoryProfanity},
		{"threat", moderation.CategoryViolence},
		{"insult", moderation.CategoryHarassment},
		{"identity_attack", moderation.CategoryHate},
		{"sexual_explicit", moderation.CategorySexual},
		{"hate/threatening", moderation.CategoryHate},
		{"misinformation", moderation.CategoryOther},
		{"", moderation.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, moderation.NormalizeCategory(tt.raw))
		})
	}
}

func TestVerdict_SetMergesCollapsedCategories(t *testing.T) {
	v := moderation.NewVerdict("local")
	v.SetRaw("toxicity", false, 0.4)
	v.SetRaw("severe_toxicity", true, 0.2)

	assert.True(t, v.Categories[moderation.CategoryOther])
	assert.InDelta(t, 0.4, v.CategoryScores[moderation.CategoryOther], 1e-9)
	assert.True(t, v.Finalize().Flagged)
}
