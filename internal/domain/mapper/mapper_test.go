package mapper_test

import (
	"testing"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"
	"media-uploader/internal/domain/mapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestParsePublicIDEntity(t *testing.T) {
	cases := map[string]entities.EntityType{
		"pet/abc":           entities.EntityPet,
		"breed/abc":         entities.EntityBreed,
		"provider/x/y":      entities.EntityProvider,
		"general/abc":       entities.EntityGeneral,
		"abc":               entities.EntityGeneral,
		"":                  entities.EntityGeneral,
		"kittens/abc":       entities.EntityGeneral,
		"/pet/abc":          entities.EntityPet,
		"samples/pet/photo": entities.EntityGeneral,
	}
	for id, want := range cases {
		assert.Equal(t, want, mapper.ParsePublicIDEntity(id), id)
	}
}

func TestProviderResponseToMedia_CallerValuesWin(t *testing.T) {
	resp := &dto.ProviderUploadResponse{
		PublicID:         "breed/abc",
		OriginalFilename: "remote-name",
		URL:              "http://cdn/x.jpg",
		SecureURL:        "https://cdn/x.jpg",
		ResourceType:     "video",
		Format:           "JPG",
		Width:            intPtr(1024),
		Height:           intPtr(768),
		Bytes:            2048,
		Duration:         floatPtr(3.5),
	}

	m := mapper.ProviderResponseToMedia(resp, mapper.RemoteContext{
		ResourceType:     entities.ResourceImage,
		EntityType:       entities.EntityPet,
		EntityID:         int64Ptr(42),
		OriginalFilename: "dog.jpg",
	})

	assert.Equal(t, entities.ResourceImage, m.ResourceType)
	assert.Equal(t, entities.EntityPet, m.EntityType)
	require.NotNil(t, m.EntityID)
	assert.Equal(t, int64(42), *m.EntityID)
	require.NotNil(t, m.OriginalFilename)
	assert.Equal(t, "dog.jpg", *m.OriginalFilename)
	assert.Equal(t, "jpg", m.Format)
	assert.Nil(t, m.Duration)
	assert.Equal(t, entities.BackendRemote, m.StorageBackend)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestProviderResponseToMedia_KeepsClassifiedResourceType(t *testing.T) {
	resp := &dto.ProviderUploadResponse{PublicID: "general/x", URL: "http://cdn/x", ResourceType: "video"}

	m := mapper.ProviderResponseToMedia(resp, mapper.RemoteContext{
		ResourceType: entities.ResourceImage,
		Filename:     "photo",
	})

	assert.Equal(t, entities.ResourceImage, m.ResourceType)
	assert.Nil(t, m.Duration)
}

func TestProviderResponseToMedia_VideoDefaults(t *testing.T) {
	resp := &dto.ProviderUploadResponse{
		PublicID:     "provider/abc",
		SecureURL:    "https://cdn/v.mp4",
		ResourceType: "video",
		Bytes:        10,
		Duration:     floatPtr(12.25),
	}

	m := mapper.ProviderResponseToMedia(resp, mapper.RemoteContext{
		ResourceType: entities.ResourceVideo,
		Filename:     "clip.MP4",
	})

	assert.Equal(t, entities.ResourceVideo, m.ResourceType)
	assert.Equal(t, entities.EntityProvider, m.EntityType)
	assert.Equal(t, "https://cdn/v.mp4", m.URL)
	assert.Equal(t, "mp4", m.Format)
	require.NotNil(t, m.Duration)
	assert.Equal(t, 12.25, *m.Duration)
	assert.Nil(t, m.OriginalFilename)
}
