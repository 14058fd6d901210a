package generation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	moderationmocks "github.com/Setharkk/Skyent-dev/pkg/app/moderation/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/domain/content"
	contentmocks "github.com/Setharkk/Skyent-dev/pkg/domain/content/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/events"
	eventmocks "github.com/Setharkk/Skyent-dev/pkg/infra/events/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/providers"
	locatormocks "github.com/Setharkk/Skyent-dev/pkg/infra/providers/factory/mocks"
	providermocks "github.com/Setharkk/Skyent-dev/pkg/infra/providers/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var genConfig = config.GenerationConfig{
	ProviderOrder: []string{"openai", "anthropic"},
	MaxTokens:     800,
	Temperature:   0.7,
}

func TestGenerate_UsesFirstConfiguredProvider(t *testing.T) {
	locator := locatormocks.NewProviderLocator(t)
	locator.EXPECT().Config("openai").Return(nil, false)
	locator.EXPECT().Config("anthropic").Return(&providers.Config{APIKey: "sk-ant", Model: "claude-3-5-sonnet"}, true)

	client := providermocks.NewClient(t)
	locator.EXPECT().Get("anthropic").Return(client, nil)
	client.EXPECT().Ask(mock.Anything, mock.MatchedBy(func(c *providers.Config) bool {
		return c.Model == "claude-3-5-sonnet" && c.MaxTokens == 800 &&
			strings.Contains(c.SystemPrompt, "posts LinkedIn") && strings.Contains(c.SystemPrompt, "tonalité professional")
	}), mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Inclure les mots-clés suivants: IA, marketing") &&
			strings.Contains(prompt, "Langue: fr")
	})).Return(&providers.CompletionResponse{
		ID:    "msg_1",
		Model: "claude-3-5-sonnet",
		Response: "Voici le contenu:\n```json\n" +
			`{"content":"L'IA change le marketing.","variants":["V1","V2"],"hashtags":["#IA"],"title":"IA","summary":"Court"}` +
			"\n```",
	}, nil)

	repo := contentmocks.NewRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	exporter := eventmocks.NewExporter(t)
	exporter.EXPECT().Export(mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		return e.Type == events.ContentGenerated
	})).Return(errors.New("broker down"))

	svc := NewService(quietLogger(), genConfig, locator, repo, nil, exporter)
	gc, err := svc.Generate(context.Background(), &Parameters{
		ContentType: LinkedInPost,
		Prompt:      "l'IA dans le marketing",
		Keywords:    []string{"IA", "marketing"},
		Tone:        Professional,
	})
	require.NoError(t, err)
	assert.Equal(t, "L'IA change le marketing.", gc.Content)
	assert.Equal(t, []string{"V1", "V2"}, []string(gc.Variants))
	assert.Equal(t, "claude-3-5-sonnet", gc.ModelUsed)
	assert.Equal(t, "anthropic", gc.Metadata["provider"])
	assert.Equal(t, "linkedin_post", gc.Parameters["content_type"])
}

func TestGenerate_FallsThroughFailingProvider(t *testing.T) {
	locator := locatormocks.NewProviderLocator(t)
	openai := providermocks.NewClient(t)
	anthropic := providermocks.NewClient(t)
	locator.EXPECT().Config("openai").Return(&providers.Config{Model: "gpt-4o"}, true)
	locator.EXPECT().Config("anthropic").Return(&providers.Config{Model: "claude"}, true)
	locator.EXPECT().Get("openai").Return(openai, nil)
	locator.EXPECT().Get("anthropic").Return(anthropic, nil)
	openai.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("429"))
	anthropic.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).
		Return(&providers.CompletionResponse{Model: "claude", Response: "Texte brut sans JSON"}, nil)

	repo := contentmocks.NewRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	svc := NewService(quietLogger(), genConfig, locator, repo, nil, nil)
	gc, err := svc.Generate(context.Background(), &Parameters{ContentType: TwitterPost, Prompt: "soldes"})
	require.NoError(t, err)
	assert.Equal(t, "Texte brut sans JSON", gc.Content)
	assert.Empty(t, gc.Hashtags)
}

func TestGenerate_AllProvidersFail(t *testing.T) {
	locator := locatormocks.NewProviderLocator(t)
	client := providermocks.NewClient(t)
	locator.EXPECT().Config("openai").Return(&providers.Config{Model: "gpt-4o"}, true)
	locator.EXPECT().Config("anthropic").Return(nil, false)
	locator.EXPECT().Get("openai").Return(client, nil)
	client.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("invalid api key"))

	svc := NewService(quietLogger(), genConfig, locator, contentmocks.NewRepository(t), nil, nil)
	_, err := svc.Generate(context.Background(), &Parameters{ContentType: Email, Prompt: "relance"})
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorContains(t, err, "invalid api key")
}

func TestGenerate_MockWhenNothingConfigured(t *testing.T) {
	locator := locatormocks.NewProviderLocator(t)
	locator.EXPECT().Config(mock.Anything).Return(nil, false)

	repo := contentmocks.NewRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(c *content.GeneratedContent) bool {
		return c.ModelUsed == mockProvider
	})).Return(nil)

	mod := moderationmocks.NewService(t)
	mod.EXPECT().Moderate(mock.Anything, mock.MatchedBy(func(r *appModeration.Request) bool {
		return r.ModerationType == appModeration.TypeCombined && len(r.Content) == 1
	})).Return(&appModeration.Result{ModerationID: uuid.New(), Provider: "combined", Categories: map[string]bool{}}, nil)

	svc := NewService(quietLogger(), genConfig, locator, repo, mod, nil)
	gc, err := svc.Generate(context.Background(), &Parameters{
		ContentType: BlogArticle,
		Prompt:      "le vélo urbain",
		Keywords:    []string{"Mobilité Douce"},
		Moderate:    true,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gc.Content, "# Article de Blog sur le vélo urbain"))
	assert.Equal(t, []string{"#exemple", "#test", "#mobilitédouce"}, []string(gc.Hashtags))
	assert.Equal(t, "Contenu sur le vélo urbain", gc.Title)
	assert.Equal(t, "Résumé du contenu généré sur le vélo urbain", gc.Summary)
	assert.Equal(t, true, gc.Metadata["mock"])
	assert.Contains(t, gc.Metadata, "moderation")
}

func TestGenerate_Validation(t *testing.T) {
	svc := NewService(quietLogger(), genConfig, locatormocks.NewProviderLocator(t), contentmocks.NewRepository(t), nil, nil)

	_, err := svc.Generate(context.Background(), &Parameters{ContentType: Email, Prompt: " "})
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	_, err = svc.Generate(context.Background(), &Parameters{ContentType: "poem", Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidContentType)
	_, err = svc.Generate(context.Background(), &Parameters{ContentType: Email, Prompt: "x", Tone: "grumpy"})
	assert.ErrorIs(t, err, ErrInvalidTone)
	_, err = svc.Generate(context.Background(), &Parameters{ContentType: Email, Prompt: "x", MaxLength: -1})
	assert.ErrorIs(t, err, ErrInvalidMaxLength)
}

func TestParseReply(t *testing.T) {
	r := parseReply(`Réponse: {"content":"Bonjour","hashtags":["#a","",3]} fin`)
	assert.Equal(t, "Bonjour", r.Content)
	assert.Equal(t, []string{"#a"}, r.Hashtags)
	assert.Empty(t, r.Variants)

	r = parseReply(`{"content": 12}`)
	assert.Equal(t, `{"content": 12}`, r.Content)

	r = parseReply("{pas du json}")
	assert.Equal(t, "{pas du json}", r.Content)
}

func TestUserPrompt(t *testing.T) {
	p := &Parameters{ContentType: Newsletter, Prompt: "rentrée", MaxLength: 500, IncludeHashtags: true, References: []string{"INSEE"}}
	got := userPrompt(p)
	assert.Contains(t, got, "Génère un contenu de type newsletter sur le sujet suivant: rentrée")
	assert.Contains(t, got, "- Longueur maximale: 500 caractères\n- Inclure des hashtags pertinents\n- Mentionner les sources suivantes: INSEE")
	assert.Contains(t, got, `"summary": "Bref résumé du contenu"`)
}
