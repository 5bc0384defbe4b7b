package repositories

import (
	"context"
	"errors"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
)

var ErrMediaNotFound = errors.New("media not found")

// MediaRepository stores the records returned by the pipeline for the HTTP
// and queue callers.
type MediaRepository interface {
	Create(ctx context.Context, media *entities.MediaMetadata) error
	GetByPublicID(ctx context.Context, publicID string) (*entities.MediaMetadata, error)
	List(ctx context.Context, filter dto.MediaFilter) ([]entities.MediaMetadata, error)
	DeleteByPublicID(ctx context.Context, publicID string) error
}
