package entities

import "time"

type ResourceType string

const (
	ResourceImage ResourceType = "image"
	ResourceVideo ResourceType = "video"
	// ResourceAuto is a caller intent only. Classification always turns it
	// into image or video.
	ResourceAuto ResourceType = "auto"
)

// Folder returns the local storage folder for the resource type.
func (r ResourceType) Folder() string {
	if r == ResourceVideo {
		return "videos"
	}
	return "images"
}

type EntityType string

const (
	EntityPet      EntityType = "pet"
	EntityBreed    EntityType = "breed"
	EntityProvider EntityType = "provider"
	EntityGeneral  EntityType = "general"
)

// EntityTypes is the closed set of owners a media item can belong to.
var EntityTypes = []EntityType{EntityPet, EntityBreed, EntityProvider, EntityGeneral}

// ParseEntityType reports whether s names a known entity type.
func ParseEntityType(s string) (EntityType, bool) {
	for _, et := range EntityTypes {
		if string(et) == s {
			return et, true
		}
	}
	return "", false
}

const (
	BackendRemote = "remote"
	BackendLocal  = "local"
)

// MediaMetadata is the record produced by exactly one successful upload or
// local fallback. It is never mutated after creation.
type MediaMetadata struct {
	PublicID         string       `json:"public_id" gorm:"primaryKey;type:varchar(255)"`
	OriginalFilename *string      `json:"original_filename,omitempty" gorm:"type:varchar(255)"`
	URL              string       `json:"url" gorm:"type:varchar(1024);not null"`
	SecureURL        string       `json:"secure_url" gorm:"type:varchar(1024);not null"`
	ResourceType     ResourceType `json:"resource_type" gorm:"type:varchar(10);not null"`
	Format           string       `json:"format" gorm:"type:varchar(20)"`
	Width            *int         `json:"width,omitempty"`
	Height           *int         `json:"height,omitempty"`
	Bytes            int64        `json:"bytes" gorm:"not null"`
	Duration         *float64     `json:"duration,omitempty"`
	EntityType       EntityType   `json:"entity_type" gorm:"type:varchar(20);not null;index:idx_media_entity"`
	EntityID         *int64       `json:"entity_id,omitempty" gorm:"index:idx_media_entity"`
	StorageBackend   string       `json:"storage_backend" gorm:"type:varchar(10);not null"`
	CreatedAt        time.Time    `json:"created_at"`
}

func (MediaMetadata) TableName() string {
	return "media_assets"
}

// IsLocal reports whether the record points at the local fallback tree.
func (m *MediaMetadata) IsLocal() bool {
	return m.StorageBackend == BackendLocal
}
