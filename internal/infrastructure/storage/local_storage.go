package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/infrastructure/processor"
	"media-uploader/internal/pkg/fileutils"
	"media-uploader/pkg/constants"
	"media-uploader/pkg/file"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultFormat = "png"

// LocalStorage is the fallback store: an append-only tree of
// {root}/{images|videos}/{entity}/{uuid}.{ext} served under /uploads.
type LocalStorage struct {
	root             string
	decodeDimensions bool
	log              *zap.Logger
}

func NewLocalStorage(root string, decodeDimensions bool, log *zap.Logger) *LocalStorage {
	return &LocalStorage{
		root:             root,
		decodeDimensions: decodeDimensions,
		log:              log.Named("local-storage"),
	}
}

// Save copies the staged file into the tree under a fresh UUID name and
// synthesizes the metadata record for it.
func (l *LocalStorage) Save(ctx context.Context, req *dto.StoreRequest) (*entities.MediaMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := file.Extension(req.Filename)
	if format == "" {
		format = defaultFormat
	}
	resourceType := req.ResourceType
	if resourceType != entities.ResourceVideo {
		resourceType = entities.ResourceImage
	}
	entityType := req.EntityType
	if entityType == "" {
		entityType = entities.EntityGeneral
	}

	id := uuid.New().String()
	name := id + "." + format
	dir := filepath.Join(l.root, resourceType.Folder(), string(entityType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	dst := filepath.Join(dir, name)
	if _, err := fileutils.CopyFile(req.SourcePath, dst); err != nil {
		return nil, fmt.Errorf("copy %s: %w", req.SourcePath, err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dst, err)
	}

	url := path.Join(constants.LocalURLPrefix, resourceType.Folder(), string(entityType), name)
	media := &entities.MediaMetadata{
		PublicID:         string(entityType) + "/" + id,
		OriginalFilename: req.OriginalFilename,
		URL:              url,
		SecureURL:        url,
		ResourceType:     resourceType,
		Format:           format,
		Bytes:            info.Size(),
		EntityType:       entityType,
		EntityID:         req.EntityID,
		StorageBackend:   entities.BackendLocal,
		CreatedAt:        time.Now().UTC(),
	}
	if resourceType == entities.ResourceImage {
		w, h := l.dimensions(dst)
		media.Width, media.Height = &w, &h
	}

	l.log.Info("stored media locally",
		zap.String("public_id", media.PublicID),
		zap.String("path", dst),
		zap.Int64("bytes", media.Bytes))
	return media, nil
}

func (l *LocalStorage) dimensions(path string) (int, int) {
	if !l.decodeDimensions {
		return processor.PlaceholderWidth, processor.PlaceholderHeight
	}
	w, h, err := processor.ImageDimensions(path)
	if err != nil {
		l.log.Warn("falling back to placeholder dimensions", zap.String("path", path), zap.Error(err))
		return processor.PlaceholderWidth, processor.PlaceholderHeight
	}
	return w, h
}
