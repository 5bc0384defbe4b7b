package repositories

import (
	"context"
	"errors"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/repositories"

	"gorm.io/gorm"
)

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) repositories.MediaRepository {
	return &mediaRepository{
		db: db,
	}
}

func (r *mediaRepository) Create(ctx context.Context, media *entities.MediaMetadata) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) GetByPublicID(ctx context.Context, publicID string) (*entities.MediaMetadata, error) {
	var media entities.MediaMetadata
	err := r.db.WithContext(ctx).First(&media, "public_id = ?", publicID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repositories.ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) List(ctx context.Context, filter dto.MediaFilter) ([]entities.MediaMetadata, error) {
	q := r.db.WithContext(ctx).Model(&entities.MediaMetadata{})
	if filter.EntityType != "" {
		q = q.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != nil {
		q = q.Where("entity_id = ?", *filter.EntityID)
	}

	var items []entities.MediaMetadata
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mediaRepository) DeleteByPublicID(ctx context.Context, publicID string) error {
	res := r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&entities.MediaMetadata{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrMediaNotFound
	}
	return nil
}
