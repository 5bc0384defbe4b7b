package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"media-uploader/internal/delivery/http/handlers"
	"media-uploader/internal/delivery/http/routers"
	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/repositories"
	"media-uploader/internal/infrastructure/queue"
	inmem "media-uploader/internal/infrastructure/repositories"
	"media-uploader/internal/infrastructure/storage"
	"media-uploader/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQueue struct {
	mu   sync.Mutex
	jobs []queue.Job
	err  error
}

func (q *fakeQueue) Enqueue(_ context.Context, job queue.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

type testEnv struct {
	app      *fiber.App
	provider *repositories.MockMediaProvider
	repo     *inmem.InMemoryMediaRepository
	staging  string
}

func newEnv(t *testing.T, jobs handlers.JobQueue) *testEnv {
	t.Helper()
	provider := repositories.NewMockMediaProvider()
	down := stderrors.New("provider down")
	provider.On("UploadVideoFast", mock.Anything, mock.Anything).Return(nil, down).Maybe()
	provider.On("UploadUnsigned", mock.Anything, mock.Anything).Return(nil, down).Maybe()
	provider.On("UploadSigned", mock.Anything, mock.Anything).Return(nil, down).Maybe()

	repo := inmem.NewInMemoryMediaRepository()
	media := usecases.NewMediaService(provider, storage.NewLocalStorage(t.TempDir(), false, zap.NewNop()), zap.NewNop())
	records := usecases.NewRecordService(media, repo, zap.NewNop())
	staging := t.TempDir()

	app := fiber.New()
	routers.SetupMediaRoutes(app, handlers.NewMediaHandler(records, jobs, staging, zap.NewNop()))
	return &testEnv{app: app, provider: provider, repo: repo, staging: staging}
}

func multipartRequest(t *testing.T, target string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), string(body))
}

func TestUploadEndpointFallsBackAndPersists(t *testing.T) {
	env := newEnv(t, nil)
	req := multipartRequest(t, "/api/v1/media", map[string]string{"entity_type": "pet", "entity_id": "42"}, "dog.jpg", make([]byte, 2048))

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var media entities.MediaMetadata
	decode(t, resp, &media)
	assert.Equal(t, entities.ResourceImage, media.ResourceType)
	assert.Equal(t, "jpg", media.Format)
	assert.Equal(t, int64(2048), media.Bytes)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/images/pet/"))
	require.NotNil(t, media.OriginalFilename)
	assert.Equal(t, "dog.jpg", *media.OriginalFilename)

	_, err = env.repo.GetByPublicID(context.Background(), media.PublicID)
	assert.NoError(t, err)

	entries, err := os.ReadDir(env.staging)
	require.NoError(t, err)
	assert.Empty(t, entries, "staged file is removed after a synchronous upload")
}

func TestUploadEndpointValidation(t *testing.T) {
	env := newEnv(t, nil)
	tests := []struct {
		name   string
		fields map[string]string
		file   string
	}{
		{name: "missing file", fields: map[string]string{"entity_type": "pet"}},
		{name: "unknown entity", fields: map[string]string{"entity_type": "listing"}, file: "a.jpg"},
		{name: "bad entity id", fields: map[string]string{"entity_id": "x"}, file: "a.jpg"},
		{name: "bad media type", fields: map[string]string{"media_type": "raw"}, file: "a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := env.app.Test(multipartRequest(t, "/api/v1/media", tt.fields, tt.file, []byte("x")), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body dto.ErrorResponse
			decode(t, resp, &body)
			assert.Equal(t, "invalid_request", body.Error)
		})
	}
}

func TestUploadAsyncWithoutQueue(t *testing.T) {
	env := newEnv(t, nil)
	resp, err := env.app.Test(multipartRequest(t, "/api/v1/media/async", nil, "dog.jpg", []byte("x")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestUploadAsyncEnqueuesJob(t *testing.T) {
	q := &fakeQueue{}
	env := newEnv(t, q)
	req := multipartRequest(t, "/api/v1/media/async", map[string]string{"entity_type": "breed", "media_type": "video"}, "walk.mov", []byte("mov"))

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var body dto.EnqueueResponse
	decode(t, resp, &body)
	assert.Equal(t, "queued", body.Status)

	require.Len(t, q.jobs, 1)
	job := q.jobs[0]
	assert.Equal(t, body.JobID, job.ID)
	assert.Equal(t, queue.JobUpload, job.Type)
	assert.Equal(t, entities.EntityBreed, job.EntityType)
	assert.Equal(t, entities.ResourceVideo, job.MediaType)
	assert.Equal(t, "walk.mov", job.OriginalFilename)
	assert.FileExists(t, job.SourcePath, "staged file is kept for the worker")
}

func TestUploadAsyncEnqueueFailureRemovesStagedFile(t *testing.T) {
	env := newEnv(t, &fakeQueue{err: stderrors.New("redis down")})
	resp, err := env.app.Test(multipartRequest(t, "/api/v1/media/async", nil, "dog.jpg", []byte("x")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	entries, err := os.ReadDir(env.staging)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListAndGetRecord(t *testing.T) {
	env := newEnv(t, nil)
	ctx := context.Background()
	seven := int64(7)
	require.NoError(t, env.repo.Create(ctx, &entities.MediaMetadata{PublicID: "pet/a", EntityType: entities.EntityPet, EntityID: &seven}))
	require.NoError(t, env.repo.Create(ctx, &entities.MediaMetadata{PublicID: "breed/b", EntityType: entities.EntityBreed}))

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/media?entity_type=pet&entity_id=7", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.MediaListResponse
	decode(t, resp, &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "pet/a", list.Items[0].PublicID)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/media/record?public_id=breed/b", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/media/record?public_id=pet/zzz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteEndpoint(t *testing.T) {
	env := newEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.repo.Create(ctx, &entities.MediaMetadata{PublicID: "pet/a", ResourceType: entities.ResourceImage, EntityType: entities.EntityPet}))
	env.provider.On("Destroy", mock.Anything, "pet/a", entities.ResourceImage).Return(true, nil)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/media?public_id=pet/a", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.DeleteResponse
	decode(t, resp, &body)
	assert.True(t, body.Deleted)
	_, err = env.repo.GetByPublicID(ctx, "pet/a")
	assert.ErrorIs(t, err, repositories.ErrMediaNotFound)

	resp, err = env.app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/media", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestURLEndpoint(t *testing.T) {
	env := newEnv(t, nil)
	opts := dto.URLOptions{ResourceType: entities.ResourceVideo, Transformation: "w_300"}
	env.provider.On("BuildURL", "pet/abc123", opts).Return("https://res.example.com/demo/video/upload/w_300/pet/abc123")

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/media/url?public_id=pet/abc123&resource_type=video&transformation=w_300", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.URLResponse
	decode(t, resp, &body)
	assert.Equal(t, "https://res.example.com/demo/video/upload/w_300/pet/abc123", body.URL)
}
