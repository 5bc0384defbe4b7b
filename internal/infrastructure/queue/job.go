package queue

import (
	"encoding/json"
	"fmt"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
)

type JobType string

const (
	JobUpload JobType = "upload"
	JobDelete JobType = "delete"
)

// Job is one pipeline call queued for the background worker.
type Job struct {
	ID               string                `json:"id"`
	Type             JobType               `json:"type"`
	SourcePath       string                `json:"source_path,omitempty"`
	OriginalFilename string                `json:"original_filename,omitempty"`
	EntityType       entities.EntityType   `json:"entity_type,omitempty"`
	EntityID         *int64                `json:"entity_id,omitempty"`
	MediaType        entities.ResourceType `json:"media_type,omitempty"`
	PublicID         string                `json:"public_id,omitempty"`
	ResourceType     entities.ResourceType `json:"resource_type,omitempty"`
}

func (j *Job) UploadInput() *dto.UploadInput {
	return &dto.UploadInput{
		SourcePath:       j.SourcePath,
		EntityType:       j.EntityType,
		EntityID:         j.EntityID,
		OriginalFilename: j.OriginalFilename,
		MediaType:        j.MediaType,
	}
}

// ProcessedJob is pushed back to the server once a job finished.
type ProcessedJob struct {
	JobID     string                  `json:"job_id"`
	Type      JobType                 `json:"type"`
	Status    string                  `json:"status"`
	Media     *entities.MediaMetadata `json:"media,omitempty"`
	PublicID  string                  `json:"public_id,omitempty"`
	Deleted   bool                    `json:"deleted,omitempty"`
	ErrorCode string                  `json:"error_code,omitempty"`
}

func DeserializeJob(data string) (*Job, error) {
	var job Job
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to deserialize job: %w", err)
	}
	return &job, nil
}

func SerializeJob(job Job) (string, error) {
	bytes, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to serialize job: %w", err)
	}
	return string(bytes), nil
}

func DeserializeResult(data string) (*ProcessedJob, error) {
	var res ProcessedJob
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, fmt.Errorf("failed to deserialize result: %w", err)
	}
	return &res, nil
}
