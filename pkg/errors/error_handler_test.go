package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http/httptest"
	"testing"

	apperrors "media-uploader/pkg/errors"
	"media-uploader/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serve(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	require.NoError(t, i18n.Load("en"))

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return apperrors.HandleError(c, zap.NewNop(), err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleError_MapsCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.ErrNotFound(nil), fiber.StatusNotFound, apperrors.CodeNotFound},
		{apperrors.ErrInvalidRequest(stderrors.New("entity_type")), fiber.StatusBadRequest, apperrors.CodeInvalidRequest},
		{apperrors.ErrSourceNotFound(stderrors.New("stat")), fiber.StatusUnprocessableEntity, apperrors.CodeSourceNotFound},
		{apperrors.ErrFallbackIO(stderrors.New("disk full")), fiber.StatusInsufficientStorage, apperrors.CodeFallbackIO},
		{apperrors.ErrQueueUnavailable(nil), fiber.StatusServiceUnavailable, apperrors.CodeQueueUnavailable},
		{fmt.Errorf("wrapped: %w", apperrors.ErrNotFound(nil)), fiber.StatusNotFound, apperrors.CodeNotFound},
		{stderrors.New("boom"), fiber.StatusInternalServerError, apperrors.CodeInternal},
	}
	for _, tc := range cases {
		status, body := serve(t, tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, body["error"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestHandleError_DoesNotLeakCause(t *testing.T) {
	_, body := serve(t, apperrors.ErrFallbackIO(stderrors.New("open /srv/uploads: permission denied")))
	assert.NotContains(t, body["message"], "/srv/uploads")
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("upload: %w", apperrors.ErrSourceNotFound(nil))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSourceNotFound))
	assert.False(t, apperrors.HasCode(err, apperrors.CodeFallbackIO))
	assert.False(t, apperrors.HasCode(stderrors.New("x"), apperrors.CodeSourceNotFound))
}
