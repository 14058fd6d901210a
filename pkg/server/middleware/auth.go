package middleware

import (
	"errors"
	"strings"

	"github.com/Setharkk/Skyent-dev/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
	apiPrefix           = "/api/v1"
	SubjectLocalsKey    = "auth_subject"
)

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
	enabled    bool
}

// NewAuthMiddleware protects /api/v1 with HS256 bearer tokens. With no secret
// key configured it lets every request through.
func NewAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
	secretKey string,
) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
		enabled:    secretKey != "",
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !m.enabled || !strings.HasPrefix(ctx.Path(), apiPrefix) {
			return ctx.Next()
		}
		authHeader := ctx.Get(authorizationHeader)
		if authHeader == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.logger.Debug("invalid authorization header format")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format"})
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			m.logger.Debug("empty token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Empty token provided"})
		}

		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			m.logger.WithError(err).Debug("invalid token")
			if errors.Is(err, jwt.ErrExpiredToken) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token expired"})
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}
		ctx.Locals(SubjectLocalsKey, claims.Subject)
		return ctx.Next()
	}
}
