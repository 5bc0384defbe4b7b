package routers

import (
	"media-uploader/internal/delivery/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(app *fiber.App, mediaHandler *handlers.MediaHandler) {
	api := app.Group("/api/v1")
	api.Post("/media", mediaHandler.Upload)
	api.Post("/media/async", mediaHandler.UploadAsync)
	api.Get("/media", mediaHandler.List)
	api.Get("/media/record", mediaHandler.GetRecord)
	api.Get("/media/url", mediaHandler.URL)
	api.Delete("/media", mediaHandler.Delete)
}
