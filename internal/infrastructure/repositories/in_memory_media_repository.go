package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/repositories"
)

// InMemoryMediaRepository is used when no database is configured.
type InMemoryMediaRepository struct {
	mu   sync.RWMutex
	data map[string]entities.MediaMetadata
}

func NewInMemoryMediaRepository() *InMemoryMediaRepository {
	return &InMemoryMediaRepository{
		data: make(map[string]entities.MediaMetadata),
	}
}

func (r *InMemoryMediaRepository) Create(_ context.Context, media *entities.MediaMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[media.PublicID]; exists {
		return fmt.Errorf("media %s already exists", media.PublicID)
	}
	r.data[media.PublicID] = *media
	return nil
}

func (r *InMemoryMediaRepository) GetByPublicID(_ context.Context, publicID string) (*entities.MediaMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	media, ok := r.data[publicID]
	if !ok {
		return nil, repositories.ErrMediaNotFound
	}
	return &media, nil
}

func (r *InMemoryMediaRepository) List(_ context.Context, filter dto.MediaFilter) ([]entities.MediaMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.MediaMetadata, 0, len(r.data))
	for _, media := range r.data {
		if filter.EntityType != "" && media.EntityType != filter.EntityType {
			continue
		}
		if filter.EntityID != nil && (media.EntityID == nil || *media.EntityID != *filter.EntityID) {
			continue
		}
		result = append(result, media)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryMediaRepository) DeleteByPublicID(_ context.Context, publicID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[publicID]; !ok {
		return repositories.ErrMediaNotFound
	}
	delete(r.data, publicID)
	return nil
}
