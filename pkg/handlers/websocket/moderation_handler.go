package websocket

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	infraWebsocket "github.com/Setharkk/Skyent-dev/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

const (
	LimiterLocalsKey = "ws_conn_limiter"

	pongWait          = 45 * time.Second
	pingPeriod        = 30 * time.Second
	writeWait         = 10 * time.Second
	moderationTimeout = 30 * time.Second
)

type Handler interface {
	Handle(c *websocket.Conn)
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

// HandlerTransportDTO carries the socket handlers mounted by the API router.
type HandlerTransportDTO struct {
	ModerationHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}

type moderationReply struct {
	ID string `json:"id,omitempty"`
	*appModeration.Result
}

type moderationHandler struct {
	logger  *logrus.Logger
	service appModeration.Service
}

// NewModerationHandler moderates every text frame and answers with one JSON
// result per frame, in order.
func NewModerationHandler(logger *logrus.Logger, service appModeration.Service) Handler {
	return &moderationHandler{
		logger:  logger,
		service: service,
	}
}

func (h *moderationHandler) Handle(c *websocket.Conn) {
	if limiter, ok := c.Locals(LimiterLocalsKey).(*infraWebsocket.ConnLimiter); ok {
		defer limiter.Release()
	}

	var writeMu sync.Mutex
	writeJSON := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return err
		}
		return c.WriteJSON(v)
	}

	if err := c.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		h.logger.WithError(err).Error("failed to set read deadline")
		return
	}
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.ping(c, &writeMu, done)

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).Warn("moderation socket closed unexpectedly")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := c.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return
		}

		msg := decodeMessage(data)
		if err := writeJSON(h.moderate(msg)); err != nil {
			h.logger.WithError(err).Error("failed to write moderation reply")
			return
		}
	}
}

func (h *moderationHandler) moderate(msg infraWebsocket.ModerationMessage) interface{} {
	if strings.TrimSpace(msg.Content) == "" {
		return infraWebsocket.ErrorMessage{ID: msg.ID, Error: "content is required"}
	}
	moderationType, err := appModeration.ParseType(msg.ModerationType)
	if err != nil {
		return infraWebsocket.ErrorMessage{ID: msg.ID, Error: err.Error()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), moderationTimeout)
	defer cancel()

	result, err := h.service.Moderate(ctx, &appModeration.Request{
		Content:        []string{msg.Content},
		ContentType:    appModeration.ContentText,
		ModerationType: moderationType,
	})
	if err != nil {
		h.logger.WithError(err).WithField("message_id", msg.ID).Error("stream moderation failed")
		return infraWebsocket.ErrorMessage{ID: msg.ID, Error: err.Error()}
	}
	return moderationReply{ID: msg.ID, Result: result}
}

func (h *moderationHandler) ping(c *websocket.Conn, writeMu *sync.Mutex, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			writeMu.Lock()
			err := c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			writeMu.Unlock()
			if err != nil {
				h.logger.WithError(err).Debug("failed to send ping")
				return
			}
		}
	}
}

// decodeMessage treats anything that is not a JSON object as raw content.
func decodeMessage(data []byte) infraWebsocket.ModerationMessage {
	var msg infraWebsocket.ModerationMessage
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal(data, &msg) == nil {
		return msg
	}
	return infraWebsocket.ModerationMessage{Content: string(data)}
}
