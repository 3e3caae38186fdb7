package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
)

// ExportURLExpiry is how long an export link stays valid
const ExportURLExpiry = 24 * time.Hour

// ExportService archives fully populated documents as JSON in object storage
type ExportService interface {
	Export(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.ExportResult, error)
}

type exportService struct {
	documents DocumentService
	storage   StorageService
	logger    *logger.Logger
	now       func() time.Time
}

func NewExportService(documents DocumentService, storage StorageService, log *logger.Logger) ExportService {
	return &exportService{documents: documents, storage: storage, logger: log, now: time.Now}
}

// ExportObjectName is the archive key of a document
func ExportObjectName(doc *models.Document) string {
	return fmt.Sprintf("%s/%s/%s.json", doc.BusinessProfileID, doc.Kind, doc.Number)
}

func (s *exportService) Export(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.ExportResult, error) {
	if s.storage == nil {
		return nil, ierr.NewError("object storage not configured").
			WithHint("document export is not available").
			Mark(ierr.ErrInvalidState)
	}

	doc, err := s.documents.Get(ctx, kind, tenantID, id)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, ierr.WithError(err).WithMessage("failed to encode document").Mark(ierr.ErrSystem)
	}

	objectName := ExportObjectName(doc)
	if err := s.storage.Upload(ctx, objectName, bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		return nil, ierr.WithError(err).WithMessage("failed to upload document archive").Mark(ierr.ErrSystem)
	}

	url, err := s.storage.GetPresignedURL(ctx, objectName, ExportURLExpiry)
	if err != nil {
		return nil, ierr.WithError(err).WithMessage("failed to presign document archive").Mark(ierr.ErrSystem)
	}

	s.logger.Infow("document exported", "tenant_id", tenantID, "kind", kind, "document_id", id, "object", objectName)
	return &models.ExportResult{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  s.now().Add(ExportURLExpiry),
	}, nil
}
