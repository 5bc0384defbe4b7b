package dto

import "media-uploader/internal/domain/entities"

type UploadRequestDTO struct {
	EntityType string `json:"entity_type" form:"entity_type"`
	EntityID   string `json:"entity_id" form:"entity_id"`
	MediaType  string `json:"media_type" form:"media_type"`
}

type DeleteRequestDTO struct {
	PublicID     string `json:"public_id" query:"public_id"`
	ResourceType string `json:"resource_type" query:"resource_type"`
}

type DeleteResponse struct {
	PublicID string `json:"public_id"`
	Deleted  bool   `json:"deleted"`
}

type URLRequestDTO struct {
	PublicID       string `query:"public_id"`
	ResourceType   string `query:"resource_type"`
	Transformation string `query:"transformation"`
	Format         string `query:"format"`
}

type URLResponse struct {
	URL string `json:"url"`
}

type EnqueueResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type MediaFilter struct {
	EntityType entities.EntityType
	EntityID   *int64
}

type MediaListResponse struct {
	Items []entities.MediaMetadata `json:"items"`
	Count int                      `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
