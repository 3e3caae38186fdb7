package handlers

import (
	"context"
	"io"
	"time"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) document(args mock.Arguments) (*models.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockDocumentService) CreateInvoice(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest) (*models.Document, error) {
	return m.document(m.Called(ctx, tenantID, req))
}

func (m *MockDocumentService) CreateQuotation(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest) (*models.Document, error) {
	return m.document(m.Called(ctx, tenantID, req))
}

func (m *MockDocumentService) ConvertQuotationToInvoice(ctx context.Context, tenantID, quotationID uuid.UUID) (*models.Document, error) {
	return m.document(m.Called(ctx, tenantID, quotationID))
}

func (m *MockDocumentService) Get(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	return m.document(m.Called(ctx, kind, tenantID, id))
}

func (m *MockDocumentService) List(ctx context.Context, kind models.DocumentKind, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	args := m.Called(ctx, kind, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Document), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, req *models.UpdateDocumentRequest) (*models.Document, error) {
	return m.document(m.Called(ctx, kind, tenantID, id, req))
}

func (m *MockDocumentService) UpdateStatus(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, status string) (*models.Document, error) {
	return m.document(m.Called(ctx, kind, tenantID, id, status))
}

func (m *MockDocumentService) Delete(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) error {
	return m.Called(ctx, kind, tenantID, id).Error(0)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.ExportResult, error) {
	args := m.Called(ctx, kind, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExportResult), args.Error(1)
}

type MockNumberFormatService struct {
	mock.Mock
}

func (m *MockNumberFormatService) format(args mock.Arguments) (*models.NumberFormat, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NumberFormat), args.Error(1)
}

func (m *MockNumberFormatService) Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	return m.format(m.Called(ctx, tenantID, kind))
}

func (m *MockNumberFormatService) Create(ctx context.Context, format *models.NumberFormat) (*models.NumberFormat, error) {
	return m.format(m.Called(ctx, format))
}

func (m *MockNumberFormatService) Update(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind, patch models.NumberFormatPatch) (*models.NumberFormat, error) {
	return m.format(m.Called(ctx, tenantID, kind, patch))
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockCacheService struct {
	MockPinger
}

func (m *MockCacheService) GetNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	return nil, nil
}

func (m *MockCacheService) SetNumberFormat(ctx context.Context, format *models.NumberFormat, ttl time.Duration) error {
	return nil
}

func (m *MockCacheService) DeleteNumberFormat(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) error {
	return nil
}

type MockStorageService struct {
	MockPinger
}

func (m *MockStorageService) Upload(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	return nil
}

func (m *MockStorageService) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "", nil
}

func (m *MockStorageService) Delete(ctx context.Context, objectName string) error {
	return nil
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context) error {
	return nil
}
