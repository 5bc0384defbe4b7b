package handlers

import (
	"time"

	"media-uploader/internal/usecases"
	"media-uploader/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CleanupHandler struct {
	cleanupUC usecases.CleanupService
	maxAge    time.Duration
	log       *zap.Logger
}

func NewCleanupHandler(cleanupUC usecases.CleanupService, maxAge time.Duration, log *zap.Logger) *CleanupHandler {
	return &CleanupHandler{
		cleanupUC: cleanupUC,
		maxAge:    maxAge,
		log:       log.Named("cleanup-handler"),
	}
}

// Cleanup
//
// @Summary      Clean the staging directory
// @Description  Manual trigger for the scheduled removal of stale staged uploads
// @Tags         Maintenance
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /staging/cleanup [post]
func (h *CleanupHandler) Cleanup(c *fiber.Ctx) error {
	removed, err := h.cleanupUC.CleanupStaging(h.maxAge)
	if err != nil {
		return errors.HandleError(c, h.log, errors.ErrInternal(err))
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// Scheduled is the cron entry point.
func (h *CleanupHandler) Scheduled() {
	if _, err := h.cleanupUC.CleanupStaging(h.maxAge); err != nil {
		h.log.Error("scheduled staging cleanup failed", zap.Error(err))
	}
}
