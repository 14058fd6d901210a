package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	handlers "github.com/Setharkk/Skyent-dev/pkg/handlers/http"
	wsHandlers "github.com/Setharkk/Skyent-dev/pkg/handlers/websocket"
	"github.com/Setharkk/Skyent-dev/pkg/server/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	HealthPath             = "/health"
	VersionPath            = "/version"
	ModerationStreamPath   = "/ws/moderation"
	wsHandshakeTimeout     = 15
	wsReadWriteBufferBytes = 1024
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type apiRouter struct {
	middlewares        *middleware.Chain
	handlerTransport   handlers.HandlerTransport
	wsHandlerTransport wsHandlers.HandlerTransport
	config             *config.Config
}

func NewAPIRouter(
	middlewares *middleware.Chain,
	handlerTransport handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
	cfg *config.Config,
) ServerRouter {
	return &apiRouter{
		middlewares:        middlewares,
		handlerTransport:   handlerTransport,
		wsHandlerTransport: wsHandlerTransport,
		config:             cfg,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {

	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	wsHandlerTransport, ok := r.wsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	r.middlewares.Apply(router)

	router.Static("/swagger.json", "./docs/swagger.json")

	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: fmt.Sprintf("http://localhost:%d/swagger.json", r.config.Server.Port),
	}))

	router.Get(HealthPath, handlerTransport.GetHealthHandler.Handle)
	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	moderationStream := websocket.New(wsHandlerTransport.ModerationHandler.Handle, websocket.Config{
		HandshakeTimeout: wsHandshakeTimeout * time.Second,
		ReadBufferSize:   wsReadWriteBufferBytes,
		WriteBufferSize:  wsReadWriteBufferBytes,
	})
	router.Get(ModerationStreamPath, moderationStream)

	v1 := router.Group("/api/v1")
	{
		moderation := v1.Group("/moderation")
		{
			moderation.Get("", handlerTransport.GetModerationStatusHandler.Handle)
			moderation.Post("/moderate", handlerTransport.ModerateHandler.Handle)
			moderation.Post("/moderate/text", handlerTransport.ModerateTextHandler.Handle)
			moderation.Post("/moderate/batch", handlerTransport.ModerateBatchHandler.Handle)
			moderation.Post("/moderate/image", handlerTransport.ModerateImageHandler.Handle)
			moderation.Post("/moderate/audio", handlerTransport.ModerateAudioHandler.Handle)
			moderation.Get("/ws", moderationStream)
			moderation.Get("/:moderation_id", handlerTransport.GetModerationHandler.Handle)
		}

		v1.Post("/analyse_campaign", handlerTransport.AnalyseCampaignHandler.Handle)

		analysis := v1.Group("/analysis/db")
		{
			analysis.Get("", handlerTransport.GetAnalysisStatusHandler.Handle)
			analysis.Post("/analyze", handlerTransport.AnalyzeContentHandler.Handle)
			analysis.Get("/results", handlerTransport.ListAnalysesHandler.Handle)
			analysis.Get("/results/:analysis_id", handlerTransport.GetAnalysisHandler.Handle)
		}

		generation := v1.Group("/generation")
		{
			generation.Get("", handlerTransport.GetGenerationStatusHandler.Handle)
			generation.Post("/generate", handlerTransport.GenerateContentHandler.Handle)
			generation.Get("/contents", handlerTransport.ListContentsHandler.Handle)
			generation.Get("/contents/:content_id", handlerTransport.GetContentHandler.Handle)
		}

		publication := v1.Group("/publication")
		{
			publication.Get("", handlerTransport.GetPublicationStatusHandler.Handle)
			publication.Post("/publish", handlerTransport.PublishHandler.Handle)
			publication.Post("/publish/direct", handlerTransport.PublishDirectHandler.Handle)
			publication.Get("/content/:content_id", handlerTransport.ListContentPublicationsHandler.Handle)
			publication.Get("/:publication_id", handlerTransport.GetPublicationHandler.Handle)
		}

		webSearch := v1.Group("/websearch")
		{
			webSearch.Get("", handlerTransport.GetWebSearchStatusHandler.Handle)
			webSearch.Get("/search", handlerTransport.WebSearchHandler.Handle)
			webSearch.Post("/search", handlerTransport.WebSearchHandler.Handle)
		}
	}
	return nil
}
