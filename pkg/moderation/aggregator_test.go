package moderation_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/moderation/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name      string
	available bool
	verdict   *moderation.Verdict
	err       error
	calls     int
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Available() bool { return f.available }
func (f *fakeProvider) Classify(_ context.Context, _ []string) (*moderation.Verdict, error) {
	f.calls++
	return f.verdict, f.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func single(provider string, c moderation.Category, flagged bool, score float64) *moderation.Verdict {
	v := moderation.NewVerdict(provider)
	v.Set(c, flagged, score)
	return v.Finalize()
}

func TestAggregator_PartialFailure(t *testing.T) {
	a := mocks.NewProvider(t)
	a.EXPECT().Name().Return("openai")
	a.EXPECT().Available().Return(true)
	a.EXPECT().Classify(mock.Anything, []string{"texte"}).
		Return(single("openai", moderation.CategoryHate, true, 0.9), nil)

	b := mocks.NewProvider(t)
	b.EXPECT().Name().Return("anthropic")
	b.EXPECT().Available().Return(true)
	b.EXPECT().Classify(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	c := &fakeProvider{name: "local", available: true, verdict: single("local", moderation.CategoryProfanity, false, 0.2)}

	agg := moderation.NewAggregator(quietLogger(), nil, a, b, c)
	got, err := agg.Moderate(context.Background(), []string{"texte"}, []string{"openai", "anthropic", "local"})

	require.NoError(t, err)
	assert.True(t, got.Flagged)
	assert.Equal(t, "combined", got.Provider)
	assert.InDelta(t, 0.9, got.CategoryScores[moderation.CategoryHate], 1e-9)
	assert.InDelta(t, 0.2, got.CategoryScores[moderation.CategoryProfanity], 1e-9)
}

func TestAggregator_AllFailReturnsLastError(t *testing.T) {
	first := errors.New("first")
	last := errors.New("last")
	a := &fakeProvider{name: "openai", available: true, err: first}
	b := &fakeProvider{name: "anthropic", available: true, err: last}

	agg := moderation.NewAggregator(quietLogger(), nil, a, b)
	_, err := agg.Moderate(context.Background(), []string{"x"}, []string{"openai", "anthropic"})

	require.Error(t, err)
	assert.ErrorIs(t, err, last)
	assert.NotErrorIs(t, err, first)
}

func TestAggregator_FallsBackToLocal(t *testing.T) {
	openai := &fakeProvider{name: "openai", available: false}
	local := &fakeProvider{name: "local", available: true, verdict: single("local", moderation.CategoryOther, false, 0.1)}

	agg := moderation.NewAggregator(quietLogger(), []string{"openai"}, openai, local)
	got, err := agg.Moderate(context.Background(), []string{"x"}, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, openai.calls)
	assert.Equal(t, 1, local.calls)
	assert.False(t, got.Flagged)
}

func TestAggregator_NoProvider(t *testing.T) {
	openai := &fakeProvider{name: "openai", available: false}
	agg := moderation.NewAggregator(quietLogger(), nil, openai)

	_, err := agg.Moderate(context.Background(), []string{"x"}, []string{"openai", "unknown"})
	assert.ErrorIs(t, err, moderation.ErrNoProviderAvailable)

	_, err = agg.Moderate(context.Background(), nil, nil)
	assert.ErrorIs(t, err, moderation.ErrNothingToModerate)
}

func TestAggregator_DeduplicatesPreferences(t *testing.T) {
	local := &fakeProvider{name: "local", available: true, verdict: single("local", moderation.CategoryOther, false, 0)}
	agg := moderation.NewAggregator(quietLogger(), nil, local)

	_, err := agg.Moderate(context.Background(), []string{"x"}, []string{"local", "local"})
	require.NoError(t, err)
	assert.Equal(t, 1, local.calls)
}

func TestAggregator_ModerateWith(t *testing.T) {
	openai := &fakeProvider{name: "openai", available: false}
	local := &fakeProvider{name: "local", available: true, verdict: single("local", moderation.CategoryHate, true, 0.7)}
	agg := moderation.NewAggregator(quietLogger(), nil, openai, local)

	_, err := agg.ModerateWith(context.Background(), "openai", []string{"x"})
	assert.ErrorIs(t, err, moderation.ErrProviderUnavailable)

	_, err = agg.ModerateWith(context.Background(), "azure", []string{"x"})
	assert.ErrorIs(t, err, moderation.ErrUnknownProvider)

	got, err := agg.ModerateWith(context.Background(), "local", []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, "local", got.Provider)
	assert.True(t, got.Flagged)

	assert.Equal(t, map[string]bool{"openai": false, "local": true}, agg.Providers())
}
