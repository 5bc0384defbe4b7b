package repositories

import (
	"context"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
)

// FallbackStorage persists a staged file when every remote strategy failed.
type FallbackStorage interface {
	Save(ctx context.Context, req *dto.StoreRequest) (*entities.MediaMetadata, error)
}
