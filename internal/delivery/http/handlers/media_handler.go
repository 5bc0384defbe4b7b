package handlers

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/infrastructure/queue"
	"media-uploader/internal/usecases"
	"media-uploader/pkg/constants"
	"media-uploader/pkg/errors"
	"media-uploader/pkg/file"
	"media-uploader/pkg/helper"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobQueue accepts background jobs; nil disables the async endpoint.
type JobQueue interface {
	Enqueue(ctx context.Context, job queue.Job) error
}

type MediaHandler struct {
	records    usecases.RecordService
	jobs       JobQueue
	stagingDir string
	log        *zap.Logger
}

func NewMediaHandler(records usecases.RecordService, jobs JobQueue, stagingDir string, log *zap.Logger) *MediaHandler {
	return &MediaHandler{
		records:    records,
		jobs:       jobs,
		stagingDir: stagingDir,
		log:        log.Named("media-handler"),
	}
}

// Upload
//
// @Summary      Upload media
// @Description  Stages the file and runs it through the ingestion pipeline. Falls back to local storage when the provider is unavailable.
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file   true  "Photo or video"
// @Param        entity_type  formData  string false "pet, breed, provider or general"
// @Param        entity_id    formData  int    false "Owning entity id"
// @Param        media_type   formData  string false "image, video or auto"
// @Success      201          {object}  entities.MediaMetadata
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      507          {object}  dto.ErrorResponse "Local fallback failed"
// @Router       /media [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	in, err := h.stage(c)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	defer os.Remove(in.SourcePath)

	media, err := h.records.Ingest(c.UserContext(), in)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

// UploadAsync
//
// @Summary      Queue a media upload
// @Description  Stages the file and hands it to the background worker
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file   true  "Photo or video"
// @Param        entity_type  formData  string false "pet, breed, provider or general"
// @Param        entity_id    formData  int    false "Owning entity id"
// @Param        media_type   formData  string false "image, video or auto"
// @Success      202          {object}  dto.EnqueueResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      503          {object}  dto.ErrorResponse "Queue not configured"
// @Router       /media/async [post]
func (h *MediaHandler) UploadAsync(c *fiber.Ctx) error {
	if h.jobs == nil {
		return errors.HandleError(c, h.log, errors.ErrQueueUnavailable(nil))
	}
	in, err := h.stage(c)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}

	job := queue.Job{
		ID:               uuid.New().String(),
		Type:             queue.JobUpload,
		SourcePath:       in.SourcePath,
		OriginalFilename: in.OriginalFilename,
		EntityType:       in.EntityType,
		EntityID:         in.EntityID,
		MediaType:        in.MediaType,
	}
	if err := h.jobs.Enqueue(c.UserContext(), job); err != nil {
		_ = os.Remove(in.SourcePath)
		return errors.HandleError(c, h.log, errors.ErrQueueUnavailable(err))
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.EnqueueResponse{JobID: job.ID, Status: constants.StatusQueued})
}

// List
//
// @Summary      List media records
// @Tags         Media
// @Produce      json
// @Param        entity_type  query     string false "Filter by entity type"
// @Param        entity_id    query     int    false "Filter by entity id"
// @Success      200          {object}  dto.MediaListResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /media [get]
func (h *MediaHandler) List(c *fiber.Ctx) error {
	var filter dto.MediaFilter
	if et := c.Query("entity_type"); et != "" {
		parsed, err := helper.ParseEntityType(et)
		if err != nil {
			return errors.HandleError(c, h.log, errors.ErrInvalidRequest(err))
		}
		filter.EntityType = parsed
	}
	id, err := helper.ParseEntityID(c.Query("entity_id"))
	if err != nil {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(err))
	}
	filter.EntityID = id

	items, err := h.records.List(c.UserContext(), filter)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(dto.MediaListResponse{Items: items, Count: len(items)})
}

// GetRecord
//
// @Summary      Get a media record
// @Tags         Media
// @Produce      json
// @Param        public_id  query     string true "Public id"
// @Success      200        {object}  entities.MediaMetadata
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /media/record [get]
func (h *MediaHandler) GetRecord(c *fiber.Ctx) error {
	publicID := c.Query("public_id")
	if publicID == "" {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(stderrors.New("public_id is required")))
	}
	media, err := h.records.Get(c.UserContext(), publicID)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(media)
}

// Delete
//
// @Summary      Delete media
// @Description  Best-effort delete at the provider; the record is removed only when the provider confirms
// @Tags         Media
// @Produce      json
// @Param        public_id      query     string true  "Public id"
// @Param        resource_type  query     string false "image or video"
// @Success      200            {object}  dto.DeleteResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Router       /media [delete]
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	req := dto.DeleteRequestDTO{
		PublicID:     c.Query("public_id"),
		ResourceType: c.Query("resource_type"),
	}
	if req.PublicID == "" {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(stderrors.New("public_id is required")))
	}
	rt, err := helper.ParseResourceType(req.ResourceType)
	if err != nil {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(err))
	}

	deleted, err := h.records.Remove(c.UserContext(), req.PublicID, rt)
	if err != nil {
		return errors.HandleError(c, h.log, err)
	}
	return c.JSON(dto.DeleteResponse{PublicID: req.PublicID, Deleted: deleted})
}

// URL
//
// @Summary      Build a delivery URL
// @Tags         Media
// @Produce      json
// @Param        public_id       query     string true  "Public id or local /uploads path"
// @Param        resource_type   query     string false "image or video"
// @Param        transformation  query     string false "Transformation segment, e.g. w_300,h_200,c_fill"
// @Param        format          query     string false "Delivery format"
// @Success      200             {object}  dto.URLResponse
// @Failure      400             {object}  dto.ErrorResponse
// @Router       /media/url [get]
func (h *MediaHandler) URL(c *fiber.Ctx) error {
	var req dto.URLRequestDTO
	if err := c.QueryParser(&req); err != nil {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(err))
	}
	if req.PublicID == "" {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(stderrors.New("public_id is required")))
	}
	rt, err := helper.ParseResourceType(req.ResourceType)
	if err != nil {
		return errors.HandleError(c, h.log, errors.ErrInvalidRequest(err))
	}

	url := h.records.BuildURL(req.PublicID, dto.URLOptions{
		ResourceType:   rt,
		Transformation: req.Transformation,
		Format:         req.Format,
	})
	return c.JSON(dto.URLResponse{URL: url})
}

// stage validates the form and saves the uploaded file under a fresh name in
// the staging directory.
func (h *MediaHandler) stage(c *fiber.Ctx) (*dto.UploadInput, error) {
	req := dto.UploadRequestDTO{
		EntityType: c.FormValue("entity_type"),
		EntityID:   c.FormValue("entity_id"),
		MediaType:  c.FormValue("media_type"),
	}
	et, err := helper.ParseEntityType(req.EntityType)
	if err != nil {
		return nil, errors.ErrInvalidRequest(err)
	}
	id, err := helper.ParseEntityID(req.EntityID)
	if err != nil {
		return nil, errors.ErrInvalidRequest(err)
	}
	mt, err := helper.ParseResourceType(req.MediaType)
	if err != nil {
		return nil, errors.ErrInvalidRequest(err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, errors.ErrInvalidRequest(err)
	}
	original := filepath.Base(fh.Filename)
	if original == "." || original == string(filepath.Separator) {
		original = ""
	}

	name := uuid.New().String()
	if ext := file.Extension(original); ext != "" {
		name += "." + ext
	}
	staged := filepath.Join(h.stagingDir, name)
	if err := c.SaveFile(fh, staged); err != nil {
		return nil, errors.ErrInternal(err)
	}

	return &dto.UploadInput{
		SourcePath:       staged,
		EntityType:       et,
		EntityID:         id,
		OriginalFilename: strings.TrimSpace(original),
		MediaType:        mt,
	}, nil
}

