package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoProviderAvailable = errors.New("no moderation provider available")
	ErrProviderUnavailable = errors.New("moderation provider not configured")
	ErrUnknownProvider     = errors.New("unknown moderation provider")
	ErrNothingToModerate   = errors.New("nothing to moderate")
)

// Aggregator runs a caller-chosen, ordered set of providers and combines their verdicts.
type Aggregator struct {
	logger    *logrus.Logger
	providers map[string]Provider
	order     []string
	defaults  []string
}

func NewAggregator(logger *logrus.Logger, defaults []string, providers ...Provider) *Aggregator {
	a := &Aggregator{
		logger:    logger,
		providers: make(map[string]Provider, len(providers)),
		defaults:  defaults,
	}
	for _, p := range providers {
		if _, dup := a.providers[p.Name()]; !dup {
			a.order = append(a.order, p.Name())
		}
		a.providers[p.Name()] = p
	}
	if len(a.defaults) == 0 {
		a.defaults = []string{"openai", LocalProviderName}
	}
	return a
}

// Providers returns the registered provider names with their availability.
func (a *Aggregator) Providers() map[string]bool {
	out := make(map[string]bool, len(a.providers))
	for name, p := range a.providers {
		out[name] = p.Available()
	}
	return out
}

// ModerateWith classifies with a single named provider.
func (a *Aggregator) ModerateWith(ctx context.Context, name string, texts []string) (*Verdict, error) {
	if len(texts) == 0 {
		return nil, ErrNothingToModerate
	}
	p, ok := a.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
	if !p.Available() {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnavailable, name)
	}
	v, err := a.classify(ctx, p, texts)
	if err != nil {
		return nil, err
	}
	return v.Finalize(), nil
}

// Moderate runs the preferred providers in parallel and combines what succeeds.
// An empty preference list means the configured defaults. Unknown or unconfigured
// providers are skipped; if none is left the local classifier is used. When every
// selected provider fails, the error of the last one in preference order is returned.
func (a *Aggregator) Moderate(ctx context.Context, texts []string, preferred []string) (*Verdict, error) {
	if len(texts) == 0 {
		return nil, ErrNothingToModerate
	}
	selected := a.resolve(preferred)
	if len(selected) == 0 {
		return nil, ErrNoProviderAvailable
	}

	verdicts := make([]*Verdict, len(selected))
	errs := make([]error, len(selected))

	var g errgroup.Group
	for i, p := range selected {
		g.Go(func() error {
			v, err := a.classify(ctx, p, texts)
			if err != nil {
				a.logger.WithError(err).WithField("provider", p.Name()).Warn("moderation provider failed")
				errs[i] = err
				return nil
			}
			verdicts[i] = v
			return nil
		})
	}
	_ = g.Wait()

	var (
		ok      []*Verdict
		raw     = make(map[string]interface{})
		lastErr error
	)
	for i, v := range verdicts {
		if v == nil {
			lastErr = errs[i]
			continue
		}
		ok = append(ok, v)
		if v.Raw != nil {
			raw[selected[i].Name()] = v.Raw
		}
	}
	if len(ok) == 0 {
		if lastErr == nil {
			return nil, ErrNoProviderAvailable
		}
		return nil, fmt.Errorf("all moderation providers failed: %w", lastErr)
	}

	combined := Combine(ok...)
	if len(raw) > 0 {
		combined.Raw = raw
	}
	for _, c := range combined.FlaggedCategories() {
		prometheus.ModerationFlaggedTotal.WithLabelValues(string(c)).Inc()
	}
	return combined, nil
}

func (a *Aggregator) resolve(preferred []string) []Provider {
	names := preferred
	if len(names) == 0 {
		names = a.defaults
	}

	seen := make(map[string]struct{}, len(names))
	var selected []Provider
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		p, ok := a.providers[name]
		if !ok {
			a.logger.WithField("provider", name).Warn("unknown moderation provider requested")
			continue
		}
		if !p.Available() {
			a.logger.WithField("provider", name).Warn("moderation provider not available")
			continue
		}
		selected = append(selected, p)
	}

	if len(selected) == 0 {
		if local, ok := a.providers[LocalProviderName]; ok && local.Available() {
			a.logger.Warn("no requested moderation provider available, using local classifier")
			selected = append(selected, local)
		}
	}
	return selected
}

func (a *Aggregator) classify(ctx context.Context, p Provider, texts []string) (v *Verdict, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider %s panicked: %v", p.Name(), r)
		}
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		prometheus.ModerationProviderTotal.WithLabelValues(p.Name(), outcome).Inc()
		prometheus.ModerationProviderLatency.WithLabelValues(p.Name()).Observe(float64(time.Since(start).Milliseconds()))
	}()

	v, err = p.Classify(ctx, texts)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("provider %s returned no verdict", p.Name())
	}
	return v, nil
}
