package services

import (
	"context"
	"io"
	"time"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockNumberFormatRepository struct {
	mock.Mock
}

func (m *MockNumberFormatRepository) Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	args := m.Called(ctx, tenantID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NumberFormat), args.Error(1)
}

func (m *MockNumberFormatRepository) Create(ctx context.Context, format *models.NumberFormat) error {
	args := m.Called(ctx, format)
	return args.Error(0)
}

func (m *MockNumberFormatRepository) CreateIfAbsent(ctx context.Context, format *models.NumberFormat) error {
	args := m.Called(ctx, format)
	return args.Error(0)
}

func (m *MockNumberFormatRepository) Update(ctx context.Context, format *models.NumberFormat) error {
	args := m.Called(ctx, format)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	args := m.Called(ctx, tenantID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NumberFormat), args.Error(1)
}

func (m *MockCacheService) SetNumberFormat(ctx context.Context, format *models.NumberFormat, ttl time.Duration) error {
	args := m.Called(ctx, format, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) error {
	args := m.Called(ctx, tenantID, kind)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) Upload(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	args := m.Called(ctx, objectName, reader, objectSize, contentType)
	return args.Error(0)
}

func (m *MockStorageService) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorageService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// passthroughTx runs fn without a transaction
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
