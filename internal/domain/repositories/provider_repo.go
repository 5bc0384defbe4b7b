package repositories

import (
	"context"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
)

// MediaProvider is the remote media host. Each upload method is one
// strategy of the ingestion chain and issues exactly one request.
type MediaProvider interface {
	UploadVideoFast(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error)
	UploadUnsigned(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error)
	UploadSigned(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error)
	Destroy(ctx context.Context, publicID string, resourceType entities.ResourceType) (bool, error)
	BuildURL(publicID string, opts dto.URLOptions) string
}
