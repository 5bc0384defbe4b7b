package usecases

import (
	"context"
	stderrors "errors"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/repositories"
	"media-uploader/pkg/errors"

	"go.uber.org/zap"
)

// RecordService is the caller side of the pipeline: it persists the records
// the pipeline returns and removes them after a successful provider delete.
type RecordService interface {
	Ingest(ctx context.Context, in *dto.UploadInput) (*entities.MediaMetadata, error)
	Save(ctx context.Context, media *entities.MediaMetadata) error
	Get(ctx context.Context, publicID string) (*entities.MediaMetadata, error)
	List(ctx context.Context, filter dto.MediaFilter) ([]entities.MediaMetadata, error)
	Remove(ctx context.Context, publicID string, resourceType entities.ResourceType) (bool, error)
	// Forget drops the persisted record after the asset was deleted elsewhere.
	Forget(ctx context.Context, publicID string) error
	BuildURL(publicID string, opts dto.URLOptions) string
}

type recordService struct {
	media MediaService
	repo  repositories.MediaRepository
	log   *zap.Logger
}

func NewRecordService(media MediaService, repo repositories.MediaRepository, log *zap.Logger) RecordService {
	return &recordService{media: media, repo: repo, log: log.Named("records")}
}

func (s *recordService) Ingest(ctx context.Context, in *dto.UploadInput) (*entities.MediaMetadata, error) {
	media, err := s.media.Upload(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

func (s *recordService) Save(ctx context.Context, media *entities.MediaMetadata) error {
	if err := s.repo.Create(ctx, media); err != nil {
		s.log.Error("persist media record", zap.String("public_id", media.PublicID), zap.Error(err))
		return errors.ErrInternal(err)
	}
	return nil
}

func (s *recordService) Get(ctx context.Context, publicID string) (*entities.MediaMetadata, error) {
	media, err := s.repo.GetByPublicID(ctx, publicID)
	if stderrors.Is(err, repositories.ErrMediaNotFound) {
		return nil, errors.ErrNotFound(err)
	}
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return media, nil
}

func (s *recordService) List(ctx context.Context, filter dto.MediaFilter) ([]entities.MediaMetadata, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	return items, nil
}

// Remove deletes the asset at the provider and, only when that succeeded,
// the persisted record. A missing resource type is taken from the record.
func (s *recordService) Remove(ctx context.Context, publicID string, resourceType entities.ResourceType) (bool, error) {
	if resourceType == "" {
		if rec, err := s.repo.GetByPublicID(ctx, publicID); err == nil {
			resourceType = rec.ResourceType
		}
	}
	if !s.media.Delete(ctx, publicID, resourceType) {
		return false, nil
	}
	return true, s.Forget(ctx, publicID)
}

func (s *recordService) Forget(ctx context.Context, publicID string) error {
	err := s.repo.DeleteByPublicID(ctx, publicID)
	if err != nil && !stderrors.Is(err, repositories.ErrMediaNotFound) {
		return errors.ErrInternal(err)
	}
	return nil
}

func (s *recordService) BuildURL(publicID string, opts dto.URLOptions) string {
	return s.media.BuildURL(publicID, opts)
}
