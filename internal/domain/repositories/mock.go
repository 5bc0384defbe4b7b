package repositories

import (
	"context"

	"media-uploader/internal/domain/dto"
	"media-uploader/internal/domain/entities"

	"github.com/stretchr/testify/mock"
)

type MockMediaProvider struct {
	mock.Mock
}

func NewMockMediaProvider() *MockMediaProvider {
	return &MockMediaProvider{}
}

func (m *MockMediaProvider) UploadVideoFast(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ProviderUploadResponse)
	return resp, args.Error(1)
}

func (m *MockMediaProvider) UploadUnsigned(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ProviderUploadResponse)
	return resp, args.Error(1)
}

func (m *MockMediaProvider) UploadSigned(ctx context.Context, req *dto.ProviderUploadRequest) (*dto.ProviderUploadResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ProviderUploadResponse)
	return resp, args.Error(1)
}

func (m *MockMediaProvider) Destroy(ctx context.Context, publicID string, resourceType entities.ResourceType) (bool, error) {
	args := m.Called(ctx, publicID, resourceType)
	return args.Bool(0), args.Error(1)
}

func (m *MockMediaProvider) BuildURL(publicID string, opts dto.URLOptions) string {
	args := m.Called(publicID, opts)
	return args.String(0)
}

type MockFallbackStorage struct {
	mock.Mock
}

func NewMockFallbackStorage() *MockFallbackStorage {
	return &MockFallbackStorage{}
}

func (m *MockFallbackStorage) Save(ctx context.Context, req *dto.StoreRequest) (*entities.MediaMetadata, error) {
	args := m.Called(ctx, req)
	media, _ := args.Get(0).(*entities.MediaMetadata)
	return media, args.Error(1)
}
