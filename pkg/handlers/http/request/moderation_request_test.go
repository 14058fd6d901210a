package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    ContentList
		wantErr bool
	}{
		{"single string", `{"content":"bonjour"}`, ContentList{"bonjour"}, false},
		{"list", `{"content":["a","b"]}`, ContentList{"a", "b"}, false},
		{"number", `{"content":42}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ModerationRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Content)
		})
	}
}

func TestModerationRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ModerationRequest{}).Validate(), ErrContentRequired)
	assert.ErrorIs(t, (&ModerationRequest{Content: ContentList{"  "}}).Validate(), ErrContentRequired)
	assert.NoError(t, (&ModerationRequest{Content: ContentList{"", "texte"}}).Validate())
}

func TestPublishRequest_Validate(t *testing.T) {
	_, _, err := (&PublishRequest{ContentID: "nope", Platform: "linkedin"}).Validate()
	assert.ErrorContains(t, err, "content_id")

	id, at, err := (&PublishRequest{
		ContentID:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Platform:     "linkedin",
		ScheduleTime: "2030-01-02T15:04:05Z",
	}).Validate()
	require.NoError(t, err)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", id.String())
	require.NotNil(t, at)
	assert.Equal(t, 2030, at.Year())

	_, err = (&DirectPublishRequest{Content: "x", Platform: "twitter", ScheduleTime: "demain"}).Validate()
	assert.ErrorContains(t, err, "RFC3339")
}

func TestCampaignBriefRequest_Validate(t *testing.T) {
	valid := CampaignBriefRequest{CampaignName: "Été", BriefItems: []BriefItemRequest{{Title: "a", Content: "b"}}}
	assert.NoError(t, valid.Validate())

	noItems := valid
	noItems.BriefItems = nil
	assert.Error(t, noItems.Validate())

	tooMany := valid
	tooMany.KeywordsToExtract = 31
	assert.Error(t, tooMany.Validate())

	assert.True(t, BoolOr(nil, true))
	f := false
	assert.False(t, BoolOr(&f, true))
}
