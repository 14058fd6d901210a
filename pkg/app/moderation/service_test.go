package moderation

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/domain/moderation_result"
	resultmocks "github.com/Setharkk/Skyent-dev/pkg/domain/moderation_result/mocks"
	"github.com/Setharkk/Skyent-dev/pkg/infra/cache"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database/types"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name      string
	available bool
	verdict   func(texts []string) (*moderation.Verdict, error)
	calls     atomic.Int32
}

func (p *stubProvider) Name() string    { return p.name }
func (p *stubProvider) Available() bool { return p.available }
func (p *stubProvider) Classify(_ context.Context, texts []string) (*moderation.Verdict, error) {
	p.calls.Add(1)
	return p.verdict(texts)
}

func verdictOf(provider string, c moderation.Category, flagged bool, score float64) *moderation.Verdict {
	v := moderation.NewVerdict(provider)
	v.Set(c, flagged, score)
	v.Raw = map[string]interface{}{"source": provider}
	return v.Finalize()
}

func newTestService(t *testing.T, repo moderation_result.Repository, providers ...moderation.Provider) *service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	agg := moderation.NewAggregator(logger, []string{"openai", "local"}, providers...)
	return NewService(logger, agg, repo, cache.NewMemoryClient(), config.ModerationConfig{
		BatchConcurrency: 2,
		CacheTTLSeconds:  60,
	}).(*service)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"", TypeCombined, false},
		{"combined", TypeCombined, false},
		{"OpenAI", TypeOpenAI, false},
		{"detoxify", TypeLocal, false},
		{"bedrock", TypeBedrock, false},
		{"perspective", "", true},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidModerationType)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	ct, err := ParseContentType("")
	require.NoError(t, err)
	assert.Equal(t, ContentText, ct)
	_, err = ParseContentType("pdf")
	assert.ErrorIs(t, err, ErrInvalidContentType)
}

func TestModerate_CombinedPersistsAndCaches(t *testing.T) {
	openai := &stubProvider{name: "openai", available: true, verdict: func([]string) (*moderation.Verdict, error) {
		return verdictOf("openai", moderation.CategoryHate, true, 0.8), nil
	}}
	local := &stubProvider{name: "local", available: true, verdict: func([]string) (*moderation.Verdict, error) {
		return verdictOf("local", moderation.CategoryProfanity, true, 0.6), nil
	}}

	repo := resultmocks.NewRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(r *moderation_result.ModerationResult) bool {
		return r.Flagged && r.Provider == "combined" && r.Content == "un\ndeux" && r.ModerationType == "combined"
	})).Return(nil).Once()

	svc := newTestService(t, repo, openai, local)
	res, err := svc.Moderate(context.Background(), &Request{Content: []string{"un", "  ", "deux"}, IncludeOriginalResponse: true})
	require.NoError(t, err)

	assert.True(t, res.Flagged)
	assert.Equal(t, "combined", res.Provider)
	assert.Equal(t, ContentText, res.ContentType)
	assert.Equal(t, map[string]bool{"hate": true, "profanity": true}, res.Categories)
	assert.InDelta(t, 0.8, res.CategoryScores["hate"], 1e-9)
	assert.Contains(t, res.OriginalResponse, "openai")

	cached, err := svc.Get(context.Background(), res.ModerationID)
	require.NoError(t, err)
	assert.Equal(t, res.ModerationID, cached.ModerationID)
	assert.Equal(t, res.Categories, cached.Categories)
}

func TestModerate_SingleProvider(t *testing.T) {
	local := &stubProvider{name: "local", available: true, verdict: func([]string) (*moderation.Verdict, error) {
		return verdictOf("local", moderation.CategoryViolence, false, 0.1), nil
	}}
	svc := newTestService(t, nil, local)

	res, err := svc.Moderate(context.Background(), &Request{Content: []string{"bonjour"}, ModerationType: TypeLocal})
	require.NoError(t, err)
	assert.False(t, res.Flagged)
	assert.Equal(t, "local", res.Provider)
	assert.Nil(t, res.OriginalResponse)

	_, err = svc.Moderate(context.Background(), &Request{Content: []string{"bonjour"}, ModerationType: TypeOpenAI})
	assert.ErrorIs(t, err, moderation.ErrUnknownProvider)
}

func TestModerate_Errors(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Moderate(context.Background(), &Request{Content: []string{" "}})
	assert.ErrorIs(t, err, moderation.ErrNothingToModerate)

	_, err = svc.Moderate(context.Background(), &Request{Content: []string{"texte"}})
	assert.ErrorIs(t, err, moderation.ErrNoProviderAvailable)
}

func TestModerate_RepositoryFailureIsIgnored(t *testing.T) {
	local := &stubProvider{name: "local", available: true, verdict: func([]string) (*moderation.Verdict, error) {
		return verdictOf("local", moderation.CategoryHate, true, 0.9), nil
	}}
	repo := resultmocks.NewRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := newTestService(t, repo, local)
	res, err := svc.Moderate(context.Background(), &Request{Content: []string{"texte"}})
	require.NoError(t, err)
	assert.True(t, res.Flagged)
}

func TestModerateBatch(t *testing.T) {
	local := &stubProvider{name: "local", available: true, verdict: func(texts []string) (*moderation.Verdict, error) {
		if texts[0] == "boom" {
			return nil, errors.New("classifier crashed")
		}
		return verdictOf("local", moderation.CategoryHate, texts[0] == "haine", 0.7), nil
	}}
	svc := newTestService(t, nil, local)

	results := svc.ModerateBatch(context.Background(), []string{"bonjour", "haine", "boom"}, Request{
		ModerationType:          TypeLocal,
		IncludeOriginalResponse: true,
	})
	require.Len(t, results, 3)
	assert.False(t, results[0].Flagged)
	assert.True(t, results[1].Flagged)

	failed := results[2]
	assert.True(t, failed.Flagged)
	assert.Equal(t, "error-local", failed.Provider)
	assert.Empty(t, failed.Categories)
	assert.Equal(t, "classifier crashed", failed.OriginalResponse["error"])
}

type slowProvider struct {
	delay time.Duration
	calls atomic.Int32
}

func (p *slowProvider) Name() string    { return "local" }
func (p *slowProvider) Available() bool { return true }
func (p *slowProvider) Classify(ctx context.Context, _ []string) (*moderation.Verdict, error) {
	p.calls.Add(1)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.delay):
		return verdictOf("local", moderation.CategoryHate, false, 0.1), nil
	}
}

func TestModerateBatch_DuplicateContentsAreIndependent(t *testing.T) {
	provider := &slowProvider{delay: 50 * time.Millisecond}

	var saved []uuid.UUID
	var mu sync.Mutex
	repo := resultmocks.NewRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r *moderation_result.ModerationResult) {
			mu.Lock()
			saved = append(saved, r.ID)
			mu.Unlock()
		}).Return(nil).Twice()

	svc := newTestService(t, repo, provider)
	results := svc.ModerateBatch(context.Background(), []string{"même texte", "même texte"}, Request{ModerationType: TypeLocal})

	require.Len(t, results, 2)
	assert.NotSame(t, results[0], results[1])
	assert.NotEqual(t, results[0].ModerationID, results[1].ModerationID)
	assert.Equal(t, int32(2), provider.calls.Load())
	assert.ElementsMatch(t, []uuid.UUID{results[0].ModerationID, results[1].ModerationID}, saved)
}

func TestModerate_CancelledCallerDoesNotFailOthers(t *testing.T) {
	provider := &slowProvider{delay: 50 * time.Millisecond}
	svc := newTestService(t, nil, provider)

	cancelled, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	var errA, errB error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errA = svc.Moderate(cancelled, &Request{Content: []string{"même texte"}, ModerationType: TypeLocal})
	}()
	go func() {
		defer wg.Done()
		_, errB = svc.Moderate(context.Background(), &Request{Content: []string{"même texte"}, ModerationType: TypeLocal})
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	assert.ErrorIs(t, errA, context.Canceled)
	assert.NoError(t, errB)
}

func TestGet_FallsBackToRepository(t *testing.T) {
	id := uuid.New()
	repo := resultmocks.NewRepository(t)
	repo.EXPECT().GetByID(mock.Anything, id).Return(&moderation_result.ModerationResult{
		ID:             id,
		ContentType:    "text",
		Flagged:        true,
		Categories:     types.BoolMap{"hate": true},
		CategoryScores: types.FloatMap{"hate": 0.9},
		Provider:       "openai",
		CreatedAt:      time.Now(),
	}, nil).Once()

	missing := uuid.New()
	repo.EXPECT().GetByID(mock.Anything, missing).Return(nil, domain.NewNotFoundError(moderation_result.EntityName, missing)).Once()

	svc := newTestService(t, repo)
	res, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "openai", res.Provider)
	assert.True(t, res.Categories["hate"])

	_, err = svc.Get(context.Background(), missing)
	assert.True(t, domain.IsNotFoundError(err))
}
