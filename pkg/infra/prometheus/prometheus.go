package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(prometheus.Labels{"app": "skyent"}, registry)

var (
	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	HTTPRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyent_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skyent_http_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "route"},
	)

	ModerationProviderTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyent_moderation_provider_calls_total",
			Help: "Moderation provider calls by outcome",
		},
		[]string{"provider", "outcome"},
	)

	ModerationProviderLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skyent_moderation_provider_latency_ms",
			Help:    "Moderation provider latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)

	ModerationFlaggedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyent_moderation_flagged_total",
			Help: "Flagged categories in combined moderation verdicts",
		},
		[]string{"category"},
	)

	GenerationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyent_generation_requests_total",
			Help: "Content generation requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	PublicationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "skyent_publications_total",
			Help: "Publications by platform and status",
		},
		[]string{"platform", "status"},
	)
)

type MetricsConfig struct {
	EnableProcess bool
}

var (
	Config   MetricsConfig
	initOnce sync.Once
)

// Initialize installs the app registry as the default; only the first call counts.
func Initialize(cfg MetricsConfig) {
	initOnce.Do(func() {
		Config = cfg
		if cfg.EnableProcess {
			registry.MustRegister(
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				collectors.NewGoCollector(),
			)
		}
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

// Registry exposes the gatherer for the metrics endpoint and tests.
func Registry() *prometheus.Registry {
	return registry
}
