package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"media-uploader/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs_CreatesTreeAndIsIdempotent(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{Media: config.MediaConfig{
		Root:       filepath.Join(root, "uploads"),
		StagingDir: filepath.Join(root, "staging"),
	}}

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- config.EnsureDirs(cfg)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	for _, dir := range []string{
		"uploads/images/pet", "uploads/images/breed", "uploads/images/provider", "uploads/images/general",
		"uploads/videos/pet", "uploads/videos/general", "staging",
	} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MEDIA_ROOT", "media-root")
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Media.Root))
	assert.Equal(t, "media-root", filepath.Base(cfg.Media.Root))
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "https://api.cloudinary.com/v1_1", cfg.Provider.APIURL)
	assert.Empty(t, cfg.DSN())
	assert.False(t, cfg.QueueEnabled())
}
