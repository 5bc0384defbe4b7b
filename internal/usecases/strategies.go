package usecases

import (
	"context"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/mapper"
	"media-uploader/internal/domain/repositories"
	"media-uploader/pkg/errors"
)

// strategy is one remote upload attempt of the ingestion chain.
type strategy struct {
	name    string
	applies func(rt entities.ResourceType) bool
	upload  func(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error)
}

// attemptResult is the outcome of a single strategy: exactly one of media
// and err is set.
type attemptResult struct {
	media *entities.MediaMetadata
	err   error
}

func (r attemptResult) ok() bool {
	return r.err == nil && r.media != nil
}

func always(entities.ResourceType) bool { return true }

func videoOnly(rt entities.ResourceType) bool { return rt == entities.ResourceVideo }

// Strategy names, in the order they are tried.
const (
	StrategyVideoFast = "video_fast_path"
	StrategyUnsigned  = "unsigned"
	StrategySigned    = "signed"
)

func remoteStrategies(p repositories.MediaProvider) []strategy {
	return []strategy{
		{name: StrategyVideoFast, applies: videoOnly, upload: p.UploadVideoFast},
		{name: StrategyUnsigned, applies: always, upload: p.UploadUnsigned},
		{name: StrategySigned, applies: always, upload: p.UploadSigned},
	}
}

func (s strategy) attempt(ctx context.Context, req *dto.ProviderUploadRequest, rc mapper.RemoteContext) attemptResult {
	resp, err := s.upload(ctx, req)
	if err != nil {
		return attemptResult{err: errors.ErrTransport(err)}
	}
	return attemptResult{media: mapper.ProviderResponseToMedia(resp, rc)}
}
