package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/mapper"
	"media-uploader/internal/domain/repositories"
	"media-uploader/internal/infrastructure/cloud"
	"media-uploader/pkg/errors"
	"media-uploader/pkg/file"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxLoggedBody = 512

// MediaService is the ingestion pipeline.
type MediaService interface {
	// Upload returns a record from the first remote strategy that succeeds,
	// or from the local fallback store. It fails only when the source is
	// missing or the fallback write fails.
	Upload(ctx context.Context, in *dto.UploadInput) (*entities.MediaMetadata, error)
	// Delete is best effort: every failure is reported as false.
	Delete(ctx context.Context, publicID string, resourceType entities.ResourceType) bool
	BuildURL(publicID string, opts dto.URLOptions) string
}

type mediaService struct {
	provider   repositories.MediaProvider
	fallback   repositories.FallbackStorage
	strategies []strategy
	log        *zap.Logger
}

func NewMediaService(provider repositories.MediaProvider, fallback repositories.FallbackStorage, log *zap.Logger) MediaService {
	return &mediaService{
		provider:   provider,
		fallback:   fallback,
		strategies: remoteStrategies(provider),
		log:        log.Named("media"),
	}
}

func (s *mediaService) Upload(ctx context.Context, in *dto.UploadInput) (*entities.MediaMetadata, error) {
	if in == nil || in.SourcePath == "" {
		return nil, errors.ErrInvalidRequest(stderrors.New("source path is required"))
	}
	if in.EntityType != "" {
		if _, ok := entities.ParseEntityType(string(in.EntityType)); !ok {
			return nil, errors.ErrInvalidRequest(fmt.Errorf("unknown entity type %q", in.EntityType))
		}
	}
	info, err := os.Stat(in.SourcePath)
	if err != nil {
		return nil, errors.ErrSourceNotFound(err)
	}
	if info.IsDir() {
		return nil, errors.ErrSourceNotFound(fmt.Errorf("%s is a directory", in.SourcePath))
	}

	name := in.OriginalFilename
	if name == "" {
		name = filepath.Base(in.SourcePath)
	}
	resourceType := file.ClassifyResource(in.MediaType, name)

	folder := in.EntityType
	if folder == "" {
		folder = entities.EntityGeneral
	}
	req := &dto.ProviderUploadRequest{
		SourcePath:   in.SourcePath,
		Filename:     name,
		PublicID:     fmt.Sprintf("%s/%s", folder, uuid.New().String()),
		ResourceType: resourceType,
		Tags:         tagsFor(folder, in.EntityID),
	}
	rc := mapper.RemoteContext{
		ResourceType:     resourceType,
		EntityType:       in.EntityType,
		EntityID:         in.EntityID,
		OriginalFilename: in.OriginalFilename,
		Filename:         name,
	}

	log := s.log.With(zap.String("public_id", req.PublicID), zap.String("resource_type", string(resourceType)))
	for _, st := range s.strategies {
		if !st.applies(resourceType) {
			continue
		}
		res := st.attempt(ctx, req, rc)
		if res.ok() {
			log.Info("uploaded media", zap.String("strategy", st.name), zap.String("url", res.media.SecureURL))
			return res.media, nil
		}
		log.Warn("upload strategy failed", append([]zap.Field{zap.String("strategy", st.name)}, failureFields(res.err)...)...)
	}

	var original *string
	if in.OriginalFilename != "" {
		original = &in.OriginalFilename
	}
	// The fallback must run even when the remote attempts used up the deadline.
	media, err := s.fallback.Save(context.WithoutCancel(ctx), &dto.StoreRequest{
		SourcePath:       in.SourcePath,
		Filename:         name,
		OriginalFilename: original,
		EntityType:       folder,
		EntityID:         in.EntityID,
		ResourceType:     resourceType,
	})
	if err != nil {
		log.Error("local fallback failed", zap.Error(err))
		return nil, errors.ErrFallbackIO(err)
	}
	log.Info("remote strategies exhausted, stored locally", zap.String("url", media.URL))
	return media, nil
}

func (s *mediaService) Delete(ctx context.Context, publicID string, resourceType entities.ResourceType) bool {
	if publicID == "" {
		return false
	}
	ok, err := s.provider.Destroy(ctx, publicID, resourceType)
	if err != nil {
		s.log.Warn("delete failed", append([]zap.Field{zap.String("public_id", publicID)}, failureFields(err)...)...)
		return false
	}
	return ok
}

func (s *mediaService) BuildURL(publicID string, opts dto.URLOptions) string {
	return s.provider.BuildURL(publicID, opts)
}

func tagsFor(et entities.EntityType, id *int64) []string {
	tags := []string{string(et)}
	if id != nil {
		tags = append(tags, fmt.Sprintf("%s_%d", et, *id))
	}
	return tags
}

func failureFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var uerr *errors.UploadError
	if stderrors.As(err, &uerr) {
		fields = append(fields, zap.String("code", uerr.Code))
	}
	var terr *cloud.TransportError
	if stderrors.As(err, &terr) {
		body := terr.Body
		if len(body) > maxLoggedBody {
			body = body[:maxLoggedBody]
		}
		fields = append(fields, zap.Int("status", terr.StatusCode), zap.ByteString("response", body))
	}
	return fields
}
