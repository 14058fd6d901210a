package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	// Health
	GetHealthHandler  Handler
	GetVersionHandler Handler

	// Moderation
	GetModerationStatusHandler Handler
	ModerateHandler            Handler
	ModerateTextHandler        Handler
	ModerateImageHandler       Handler
	ModerateAudioHandler       Handler
	ModerateBatchHandler       Handler
	GetModerationHandler       Handler

	// Analysis
	GetAnalysisStatusHandler Handler
	AnalyseCampaignHandler   Handler
	AnalyzeContentHandler    Handler
	GetAnalysisHandler       Handler
	ListAnalysesHandler      Handler

	// Generation
	GetGenerationStatusHandler Handler
	GenerateContentHandler     Handler
	GetContentHandler          Handler
	ListContentsHandler        Handler

	// Publication
	GetPublicationStatusHandler    Handler
	PublishHandler                 Handler
	PublishDirectHandler           Handler
	GetPublicationHandler          Handler
	ListContentPublicationsHandler Handler

	// Web search
	GetWebSearchStatusHandler Handler
	WebSearchHandler          Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
