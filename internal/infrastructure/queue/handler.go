package queue

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"media-uploader/internal/usecases"
	"media-uploader/pkg/constants"
	"media-uploader/pkg/errors"

	"go.uber.org/zap"
)

type JobHandler interface {
	Handle(ctx context.Context, job Job) ProcessedJob
}

// MediaJobHandler runs queued jobs through the ingestion pipeline. The
// worker owns the staged file of an upload job and removes it afterwards.
type MediaJobHandler struct {
	media usecases.MediaService
	log   *zap.Logger
}

func NewMediaJobHandler(media usecases.MediaService, log *zap.Logger) *MediaJobHandler {
	return &MediaJobHandler{media: media, log: log.Named("job-handler")}
}

func (h *MediaJobHandler) Handle(ctx context.Context, job Job) ProcessedJob {
	res := ProcessedJob{JobID: job.ID, Type: job.Type, Status: constants.StatusCompleted}

	switch job.Type {
	case JobUpload:
		media, err := h.media.Upload(ctx, job.UploadInput())
		if !errors.HasCode(err, errors.CodeSourceNotFound) {
			if rmErr := os.Remove(job.SourcePath); rmErr != nil && !os.IsNotExist(rmErr) {
				h.log.Warn("could not remove staged file", zap.String("path", job.SourcePath), zap.Error(rmErr))
			}
		}
		if err != nil {
			return h.failed(res, err)
		}
		res.Media = media
		res.PublicID = media.PublicID
	case JobDelete:
		res.PublicID = job.PublicID
		res.Deleted = h.media.Delete(ctx, job.PublicID, job.ResourceType)
	default:
		return h.failed(res, errors.ErrInvalidRequest(fmt.Errorf("unknown job type: %s", job.Type)))
	}
	return res
}

func (h *MediaJobHandler) failed(res ProcessedJob, err error) ProcessedJob {
	res.Status = constants.StatusFailed
	res.ErrorCode = errors.CodeInternal
	var ue *errors.UploadError
	if stderrors.As(err, &ue) {
		res.ErrorCode = ue.Code
	}
	h.log.Error("job failed", zap.String("job_id", res.JobID), zap.String("type", string(res.Type)), zap.Error(err))
	return res
}
