package mapper

import (
	"strings"
	"time"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/pkg/file"
)

// ParsePublicIDEntity returns the entity type encoded in the first path
// segment of a provider public id, or general when the segment is missing or
// not a known entity type.
func ParsePublicIDEntity(publicID string) entities.EntityType {
	segments := strings.Split(strings.Trim(publicID, "/"), "/")
	if len(segments) < 2 {
		return entities.EntityGeneral
	}
	if et, ok := entities.ParseEntityType(segments[0]); ok {
		return et
	}
	return entities.EntityGeneral
}

// RemoteContext carries the caller-side facts that win over whatever the
// provider echoes back. ResourceType is the classified type and is copied
// into the record as is.
type RemoteContext struct {
	ResourceType     entities.ResourceType
	EntityType       entities.EntityType
	EntityID         *int64
	OriginalFilename string
	Filename         string
}

func ProviderResponseToMedia(resp *dto.ProviderUploadResponse, rc RemoteContext) *entities.MediaMetadata {
	resourceType := rc.ResourceType

	entityType := rc.EntityType
	if entityType == "" {
		entityType = ParsePublicIDEntity(resp.PublicID)
	}

	format := strings.ToLower(resp.Format)
	if format == "" {
		format = file.Extension(rc.Filename)
	}

	url, secureURL := resp.URL, resp.SecureURL
	if secureURL == "" {
		secureURL = url
	}
	if url == "" {
		url = secureURL
	}

	m := &entities.MediaMetadata{
		PublicID:         resp.PublicID,
		OriginalFilename: originalName(rc.OriginalFilename, resp.OriginalFilename),
		URL:              url,
		SecureURL:        secureURL,
		ResourceType:     resourceType,
		Format:           format,
		Width:            resp.Width,
		Height:           resp.Height,
		Bytes:            resp.Bytes,
		EntityType:       entityType,
		EntityID:         rc.EntityID,
		StorageBackend:   entities.BackendRemote,
		CreatedAt:        time.Now().UTC(),
	}
	if resourceType == entities.ResourceVideo {
		m.Duration = resp.Duration
	}
	return m
}

func originalName(callerSupplied, remote string) *string {
	if callerSupplied != "" {
		return &callerSupplied
	}
	if remote != "" {
		return &remote
	}
	return nil
}
