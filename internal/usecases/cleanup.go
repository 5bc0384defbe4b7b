package usecases

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type CleanupService interface {
	// CleanupStaging removes staged uploads older than maxAge and returns how
	// many entries were removed.
	CleanupStaging(maxAge time.Duration) (int, error)
}

type cleanupService struct {
	stagingDir string
	log        *zap.Logger
	now        func() time.Time
}

func NewCleanupService(stagingDir string, log *zap.Logger) CleanupService {
	return &cleanupService{
		stagingDir: stagingDir,
		log:        log.Named("cleanup"),
		now:        time.Now,
	}
}

func (s *cleanupService) CleanupStaging(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.stagingDir)
	if err != nil {
		return 0, fmt.Errorf("read staging dir: %w", err)
	}

	var (
		removed int
		errs    []error
	)
	now := s.now()
	for _, entry := range entries {
		p := filepath.Join(s.stagingDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			errs = append(errs, fmt.Errorf("stat %s: %w", p, err))
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.RemoveAll(p); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", p, err))
			continue
		}
		removed++
		s.log.Debug("removed stale staged upload", zap.String("path", p))
	}
	if removed > 0 {
		s.log.Info("staging cleanup finished", zap.Int("removed", removed))
	}
	return removed, stderrors.Join(errs...)
}
