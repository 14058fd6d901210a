package router

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}

// BuildAll mounts every router on app and reports all failures together.
func BuildAll(app *fiber.App, routers ...ServerRouter) error {
	var errs []error
	for i, r := range routers {
		if err := r.BuildRoutes(app); err != nil {
			errs = append(errs, fmt.Errorf("router %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
