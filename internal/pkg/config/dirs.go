package config

import (
	"fmt"
	"os"
	"path/filepath"

	"media-uploader/internal/domain/entities"
)

// EnsureDirs provisions the local media tree and the staging directory.
// MkdirAll makes it safe to call repeatedly and concurrently.
func EnsureDirs(cfg *Config) error {
	dirs := []string{cfg.Media.StagingDir}
	for _, kind := range []entities.ResourceType{entities.ResourceImage, entities.ResourceVideo} {
		for _, et := range entities.EntityTypes {
			dirs = append(dirs, filepath.Join(cfg.Media.Root, kind.Folder(), string(et)))
		}
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
