package file

import (
	"path/filepath"
	"strings"

	"media-uploader/internal/domain/entities"
)

var videoExtensions = []string{"mp4", "mov", "avi"}

// Extension returns the lowercase extension of name without the dot.
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func IsVideoFile(name string) bool {
	ext := Extension(name)
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// ClassifyResource decides the resource type of an upload once, before any
// transport attempt. An explicit image or video intent always wins. Otherwise
// a video extension means video and everything else, including a name with no
// extension, is an image.
func ClassifyResource(intent entities.ResourceType, name string) entities.ResourceType {
	switch intent {
	case entities.ResourceImage, entities.ResourceVideo:
		return intent
	}
	if IsVideoFile(name) {
		return entities.ResourceVideo
	}
	return entities.ResourceImage
}
