package http

import (
	"errors"

	appAnalysis "github.com/Setharkk/Skyent-dev/pkg/app/analysis"
	"github.com/Setharkk/Skyent-dev/pkg/app/generation"
	appModeration "github.com/Setharkk/Skyent-dev/pkg/app/moderation"
	"github.com/Setharkk/Skyent-dev/pkg/domain"
	"github.com/Setharkk/Skyent-dev/pkg/infra/websearch"
	"github.com/Setharkk/Skyent-dev/pkg/moderation"
	"github.com/gofiber/fiber/v2"
)

var badRequestErrors = []error{
	domain.ErrInvalidPlatform,
	domain.ErrEmptyContent,
	moderation.ErrNothingToModerate,
	moderation.ErrUnknownProvider,
	appModeration.ErrInvalidContentType,
	appModeration.ErrInvalidModerationType,
	appAnalysis.ErrInvalidBrief,
	generation.ErrEmptyPrompt,
	generation.ErrInvalidContentType,
	generation.ErrInvalidTone,
	generation.ErrInvalidMaxLength,
	websearch.ErrEmptyQuery,
}

// errorStatus maps a service error to its HTTP status; fallback covers anything unmapped.
func errorStatus(err error, fallback int) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return fiber.StatusBadRequest
		}
	}
	switch {
	case domain.IsNotFoundError(err):
		return fiber.StatusNotFound
	case errors.Is(err, moderation.ErrNoProviderAvailable),
		errors.Is(err, moderation.ErrProviderUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, generation.ErrGenerationFailed):
		return fiber.StatusBadGateway
	}
	return fallback
}

func respondError(c *fiber.Ctx, err error, fallback int) error {
	return c.Status(errorStatus(err, fallback)).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
