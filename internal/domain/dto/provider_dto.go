package dto

import "media-uploader/internal/domain/entities"

type ProviderUploadRequest struct {
	SourcePath   string
	Filename     string
	PublicID     string
	ResourceType entities.ResourceType
	Tags         []string
}

// ProviderUploadResponse holds the fields consumed from the provider's upload response.
type ProviderUploadResponse struct {
	PublicID         string   `json:"public_id"`
	OriginalFilename string   `json:"original_filename"`
	URL              string   `json:"url"`
	SecureURL        string   `json:"secure_url"`
	ResourceType     string   `json:"resource_type"`
	Format           string   `json:"format"`
	Width            *int     `json:"width"`
	Height           *int     `json:"height"`
	Bytes            int64    `json:"bytes"`
	Duration         *float64 `json:"duration"`
}

type ProviderDestroyResponse struct {
	Result string `json:"result"`
}

type URLOptions struct {
	ResourceType   entities.ResourceType
	Transformation string
	Format         string
}
