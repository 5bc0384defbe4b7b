package dto

import "media-uploader/internal/domain/entities"

// UploadInput is what callers hand to the ingestion pipeline.
type UploadInput struct {
	SourcePath       string
	EntityType       entities.EntityType
	EntityID         *int64
	OriginalFilename string
	// MediaType is the caller's intent: image, video or auto.
	MediaType entities.ResourceType
}

// StoreRequest describes one local fallback write.
type StoreRequest struct {
	SourcePath       string
	Filename         string
	OriginalFilename *string
	EntityType       entities.EntityType
	EntityID         *int64
	ResourceType     entities.ResourceType
}
