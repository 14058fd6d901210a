package dependency_container

import (
	"fmt"
	"time"

	appAnalysis "github.com/Setharkk/Skyent-dev/pkg/app/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/app/generation"
	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	appPublication "github.com/Setharkk/Skyent-dev/pkg/app/publication"
	"github.com/Setharkk/Skyent-dev/pkg/config"
	handlers "github.com/Setharkk/Skyent-dev/pkg/handlers/http"
	wsHandlers "github.com/Setharkk/Skyent-dev/pkg/handlers/websocket"
	"github.com/Setharkk/Skyent-dev/pkg/infra/auth/jwt"
	"github.com/Setharkk/Skyent-dev/pkg/infra/bedrock"
	"github.com/Setharkk/Skyent-dev/pkg/infra/cache"
	"github.com/Setharkk/Skyent-dev/pkg/infra/database"
	"github.com/Setharkk/Skyent-dev/pkg/infra/events"
	"github.com/Setharkk/Skyent-dev/pkg/infra/events/kafka"
	"github.com/Setharkk/Skyent-dev/pkg/infra/httpx"
	providersFactory "github.com/Setharkk/Skyent-dev/pkg/infra/providers/factory"
	"github.com/Setharkk/Skyent-dev/pkg/infra/repository"
	"github.com/Setharkk/Skyent-dev/pkg/infra/toxicity"
	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/keywords"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/sentiment"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/summary"
	"github.com/Setharkk/Skyent-dev/pkg/nlp/tagger"
	"github.com/Setharkk/Skyent-dev/pkg/server/middleware"
	"github.com/Setharkk/Skyent-dev/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	httpClientTimeout = 30 * time.Second
)

type Container struct {
	Cache              cache.Client
	BedrockClient      bedrock.Client
	EventExporter      events.Exporter
	JWTManager         jwt.Manager
	HandlerTransport   handlers.HandlerTransport
	WSHandlerTransport wsHandlers.HandlerTransport
	Middlewares        *middleware.Chain

	ModerationService  appModeration.Service
	AnalysisService    appAnalysis.Service
	GenerationService  generation.Service
	PublicationService appPublication.Service
	WebSearch          websearch.Searcher
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	logger := di.Logger

	httpClient := httpx.NewFastHTTPClient(
		httpx.WithTimeout(httpClientTimeout),
		httpx.WithUserAgent(version.UserAgent()),
	)

	cacheInstance, err := newCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	exporter, err := newEventExporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	bedrockClient := bedrock.NewClient()
	providerLocator := providersFactory.NewProviderLocator(cfg.Providers, httpClient, bedrockClient)

	// nlp
	textTagger := tagger.New()
	keywordScorer := keywords.NewScorer(logger, textTagger)
	summaryGenerator := summary.NewGenerator(logger, summary.WithRanker(summary.NewLSARanker(textTagger)))
	sentimentAnalyzer := sentiment.NewAnalyzer(textTagger)

	// repositories
	contentRepository := repository.NewContentRepository(di.DB.DB)
	moderationRepository := repository.NewModerationResultRepository(di.DB.DB)
	publicationRepository := repository.NewPublicationRepository(di.DB.DB)
	analysisRepository := repository.NewAnalysisRepository(di.DB.DB)

	// moderation
	aggregator := moderation.NewAggregator(
		logger,
		cfg.Moderation.DefaultProviders,
		toxicity.NewProviders(cfg, logger, httpClient, providerLocator, bedrockClient, textTagger)...,
	)
	moderationService := appModeration.NewService(logger, aggregator, moderationRepository, cacheInstance, cfg.Moderation)

	searcher := websearch.NewTavilyClient(httpClient, cacheInstance, logger, cfg.WebSearch)

	analysisService := appAnalysis.NewService(
		logger,
		keywordScorer,
		summaryGenerator,
		sentimentAnalyzer,
		searcher,
		analysisRepository,
	)
	generationService := generation.NewService(
		logger,
		cfg.Generation,
		providerLocator,
		contentRepository,
		moderationService,
		exporter,
	)
	publicationService := appPublication.NewService(
		logger,
		publicationRepository,
		contentRepository,
		appPublication.NewSimulatedPublishers(cfg.Publication.RatePerMinute),
		exporter,
	)

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	middlewares := middleware.NewChain(
		middleware.NewPanicRecoverMiddleware(logger),
		middleware.NewCORSMiddleware(cfg.Server.AllowOrigins),
		middleware.NewMetricsMiddleware(logger, cfg.Metrics.Enabled),
		middleware.NewAuthMiddleware(logger, jwtManager, cfg.Server.SecretKey),
		middleware.NewWebsocketMiddleware(cfg, logger),
	)

	handlerTransport := &handlers.HandlerTransportDTO{
		// Health
		GetHealthHandler:  handlers.NewGetHealthHandler(logger, cfg),
		GetVersionHandler: handlers.NewGetVersionHandler(logger),

		// Moderation
		GetModerationStatusHandler: handlers.NewGetModuleStatusHandler(logger, "moderation", func() fiber.Map {
			return fiber.Map{"providers": moderationService.Providers()}
		}),
		ModerateHandler:      handlers.NewModerateHandler(logger, moderationService),
		ModerateTextHandler:  handlers.NewModerateContentHandler(logger, moderationService, appModeration.ContentText),
		ModerateImageHandler: handlers.NewModerateContentHandler(logger, moderationService, appModeration.ContentImage),
		ModerateAudioHandler: handlers.NewModerateContentHandler(logger, moderationService, appModeration.ContentAudio),
		ModerateBatchHandler: handlers.NewModerateBatchHandler(logger, moderationService),
		GetModerationHandler: handlers.NewGetModerationHandler(logger, moderationService),

		// Analysis
		GetAnalysisStatusHandler: handlers.NewGetModuleStatusHandler(logger, "analysis", nil),
		AnalyseCampaignHandler:   handlers.NewAnalyseCampaignHandler(logger, analysisService),
		AnalyzeContentHandler:    handlers.NewAnalyzeContentHandler(logger, analysisService),
		GetAnalysisHandler:       handlers.NewGetAnalysisHandler(logger, analysisService),
		ListAnalysesHandler:      handlers.NewListAnalysesHandler(logger, analysisService),

		// Generation
		GetGenerationStatusHandler: handlers.NewGetModuleStatusHandler(logger, "generation", func() fiber.Map {
			configured := make([]string, 0, len(cfg.Generation.ProviderOrder))
			for _, name := range cfg.Generation.ProviderOrder {
				if cfg.Providers.Configured(name) {
					configured = append(configured, name)
				}
			}
			return fiber.Map{"providers": configured}
		}),
		GenerateContentHandler: handlers.NewGenerateContentHandler(logger, generationService),
		GetContentHandler:      handlers.NewGetContentHandler(logger, generationService),
		ListContentsHandler:    handlers.NewListContentsHandler(logger, generationService),

		// Publication
		GetPublicationStatusHandler: handlers.NewGetModuleStatusHandler(logger, "publication", func() fiber.Map {
			return fiber.Map{"events": exporter.Name()}
		}),
		PublishHandler:                 handlers.NewPublishHandler(logger, publicationService),
		PublishDirectHandler:           handlers.NewPublishDirectHandler(logger, publicationService),
		GetPublicationHandler:          handlers.NewGetPublicationHandler(logger, publicationService),
		ListContentPublicationsHandler: handlers.NewListContentPublicationsHandler(logger, publicationService),

		// Web search
		GetWebSearchStatusHandler: handlers.NewGetModuleStatusHandler(logger, "websearch", func() fiber.Map {
			return fiber.Map{"configured": searcher.Configured()}
		}),
		WebSearchHandler: handlers.NewWebSearchHandler(logger, searcher),
	}

	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		ModerationHandler: wsHandlers.NewModerationHandler(logger, moderationService),
	}

	return &Container{
		Cache:              cacheInstance,
		BedrockClient:      bedrockClient,
		EventExporter:      exporter,
		JWTManager:         jwtManager,
		HandlerTransport:   handlerTransport,
		WSHandlerTransport: wsHandlerTransport,
		Middlewares:        middlewares,
		ModerationService:  moderationService,
		AnalysisService:    analysisService,
		GenerationService:  generationService,
		PublicationService: publicationService,
		WebSearch:          searcher,
	}, nil
}

// Close releases resources that outlive requests.
func (c *Container) Close() {
	if c.EventExporter != nil {
		c.EventExporter.Close()
	}
}

// newCache connects to redis when a host is configured and falls back to the
// in-process cache otherwise.
func newCache(cfg *config.Config, logger *logrus.Logger) (cache.Client, error) {
	if cfg.Redis.Host == "" {
		logger.Info("redis host not configured, using in-memory cache")
		return cache.NewMemoryClient(), nil
	}
	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	return cacheInstance, nil
}

func newEventExporter(cfg *config.Config, logger *logrus.Logger) (events.Exporter, error) {
	kafkaCfg := cfg.Publication.Kafka
	if kafkaCfg.Host == "" {
		return events.NewNoopExporter(), nil
	}
	exporter, err := kafka.NewKafkaExporter(kafka.Config{
		Host:  kafkaCfg.Host,
		Port:  kafkaCfg.Port,
		Topic: kafkaCfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event exporter: %w", err)
	}
	logger.WithField("topic", kafkaCfg.Topic).Info("publication events exported to kafka")
	return exporter, nil
}
