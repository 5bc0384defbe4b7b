package routers

import (
	"fmt"

	"media-uploader/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

// SetupCleanupRoutes registers the manual trigger and starts the cron
// schedule. The caller stops the returned scheduler on shutdown.
func SetupCleanupRoutes(app *fiber.App, cleanupHandler *handlers.CleanupHandler, schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(schedule, cleanupHandler.Scheduled); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", schedule, err)
	}
	c.Start()

	api := app.Group("/api/v1")
	api.Post("/staging/cleanup", cleanupHandler.Cleanup)
	return c, nil
}
