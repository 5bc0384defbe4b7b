package errors

import (
	stderrors "errors"

	"media-uploader/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func statusFor(code string) int {
	switch code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeInvalidRequest:
		return fiber.StatusBadRequest
	case CodeSourceNotFound:
		return fiber.StatusUnprocessableEntity
	case CodeFallbackIO:
		return fiber.StatusInsufficientStorage
	case CodeQueueUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleError writes err as a JSON error response. Only the code and a
// localized message reach the client; the wrapped cause is logged.
func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	var ue *UploadError
	if stderrors.As(err, &ue) {
		if ue.Err != nil {
			log.Warn("request failed", zap.String("code", ue.Code), zap.Error(ue.Err))
		}
		message := i18n.T(ue.Code)
		if message == ue.Code {
			message = ue.Message
		}
		return c.Status(statusFor(ue.Code)).JSON(fiber.Map{
			"error":   ue.Code,
			"message": message,
		})
	}

	log.Error("unexpected error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   CodeInternal,
		"message": i18n.T(CodeInternal),
	})
}
