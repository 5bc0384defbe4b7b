package storage_test

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/infrastructure/storage"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, make([]byte, size), 0o644))
	return p
}

func TestSaveImage(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, t.TempDir(), "dog.jpg", 2048)
	store := storage.NewLocalStorage(root, false, zap.NewNop())
	id := int64(42)

	media, err := store.Save(context.Background(), &dto.StoreRequest{
		SourcePath:   src,
		Filename:     "dog.jpg",
		EntityType:   entities.EntityPet,
		EntityID:     &id,
		ResourceType: entities.ResourceImage,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.ResourceImage, media.ResourceType)
	assert.Equal(t, "jpg", media.Format)
	assert.Equal(t, int64(2048), media.Bytes)
	assert.Equal(t, entities.EntityPet, media.EntityType)
	require.NotNil(t, media.EntityID)
	assert.Equal(t, int64(42), *media.EntityID)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/images/pet/"))
	assert.True(t, strings.HasSuffix(media.URL, ".jpg"))
	assert.Equal(t, media.URL, media.SecureURL)
	assert.True(t, strings.HasPrefix(media.PublicID, "pet/"))
	assert.True(t, media.IsLocal())
	require.NotNil(t, media.Width)
	assert.Equal(t, 800, *media.Width)
	assert.Equal(t, 600, *media.Height)
	assert.Nil(t, media.Duration)

	stored := filepath.Join(root, strings.TrimPrefix(media.URL, "/uploads/"))
	info, err := os.Stat(stored)
	require.NoError(t, err)
	assert.Equal(t, int64(2048), info.Size())
}

func TestSaveVideoHasNoDimensions(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, t.TempDir(), "walk.mov", 100)
	store := storage.NewLocalStorage(root, false, zap.NewNop())

	media, err := store.Save(context.Background(), &dto.StoreRequest{
		SourcePath: src, Filename: "walk.mov", EntityType: entities.EntityBreed, ResourceType: entities.ResourceVideo,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ResourceVideo, media.ResourceType)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/videos/breed/"))
	assert.Nil(t, media.Width)
	assert.Nil(t, media.Height)
}

func TestSaveDefaults(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, t.TempDir(), "blob", 10)
	store := storage.NewLocalStorage(root, false, zap.NewNop())

	media, err := store.Save(context.Background(), &dto.StoreRequest{
		SourcePath: src, Filename: "blob",
	})
	require.NoError(t, err)
	assert.Equal(t, "png", media.Format)
	assert.Equal(t, entities.ResourceImage, media.ResourceType)
	assert.Equal(t, entities.EntityGeneral, media.EntityType)
	assert.True(t, strings.HasPrefix(media.URL, "/uploads/images/general/"))
}

func TestSaveTwiceNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	src := writeFile(t, t.TempDir(), "photo.png", 64)
	store := storage.NewLocalStorage(root, false, zap.NewNop())
	req := &dto.StoreRequest{SourcePath: src, Filename: "photo.png", EntityType: entities.EntityPet, ResourceType: entities.ResourceImage}

	first, err := store.Save(context.Background(), req)
	require.NoError(t, err)
	second, err := store.Save(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.PublicID, second.PublicID)
	entries, err := os.ReadDir(filepath.Join(root, "images", "pet"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveDecodesDimensionsWhenEnabled(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "cat.png")
	require.NoError(t, imaging.Save(imaging.New(120, 45, color.Black), src))
	store := storage.NewLocalStorage(t.TempDir(), true, zap.NewNop())

	media, err := store.Save(context.Background(), &dto.StoreRequest{
		SourcePath: src, Filename: "cat.png", EntityType: entities.EntityPet, ResourceType: entities.ResourceImage,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, *media.Width)
	assert.Equal(t, 45, *media.Height)
}

func TestSaveDecodeFailureKeepsPlaceholders(t *testing.T) {
	src := writeFile(t, t.TempDir(), "broken.jpg", 16)
	store := storage.NewLocalStorage(t.TempDir(), true, zap.NewNop())

	media, err := store.Save(context.Background(), &dto.StoreRequest{
		SourcePath: src, Filename: "broken.jpg", EntityType: entities.EntityPet, ResourceType: entities.ResourceImage,
	})
	require.NoError(t, err)
	assert.Equal(t, 800, *media.Width)
	assert.Equal(t, 600, *media.Height)
}

func TestSaveUnwritableRootFails(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "root")
	require.NoError(t, os.WriteFile(root, []byte("file, not dir"), 0o644))
	src := writeFile(t, t.TempDir(), "dog.jpg", 8)
	store := storage.NewLocalStorage(root, false, zap.NewNop())

	_, err := store.Save(context.Background(), &dto.StoreRequest{
		SourcePath: src, Filename: "dog.jpg", EntityType: entities.EntityPet, ResourceType: entities.ResourceImage,
	})
	assert.Error(t, err)
}
