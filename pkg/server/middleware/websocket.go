package middleware

import (
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/config"
	wsHandlers "github.com/Setharkk/Skyent-dev/pkg/handlers/websocket"
	infra "github.com/Setharkk/Skyent-dev/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger  *logrus.Logger
	limiter *infra.ConnLimiter
}

// NewWebsocketMiddleware guards /ws paths: only upgrade requests get through and
// at most server.max_ws_connections sockets are open at once.
func NewWebsocketMiddleware(
	cfg *config.Config,
	logger *logrus.Logger,
) Middleware {
	return &websocketMiddleware{
		logger:  logger,
		limiter: infra.NewConnLimiter(cfg.Server.MaxWSConnections),
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.Contains(c.Path(), "/ws") {
			return c.Next()
		}
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !m.limiter.TryAcquire() {
			m.logger.WithField("stats", m.limiter.Stats()).Warn("websocket connection limit reached")
			return fiber.ErrTooManyRequests
		}
		c.Locals(wsHandlers.LimiterLocalsKey, m.limiter)
		return c.Next()
	}
}
