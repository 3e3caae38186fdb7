package services

import (
	"context"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/numbering"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
)

// NumberFormatService manages the per-tenant, per-kind number format singleton
type NumberFormatService interface {
	// Get returns the tenant's format, creating the default on first access
	Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error)
	// Create fails with ErrAlreadyExists when the tenant already has a format for the kind
	Create(ctx context.Context, format *models.NumberFormat) (*models.NumberFormat, error)
	Update(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind, patch models.NumberFormatPatch) (*models.NumberFormat, error)
}

type numberFormatService struct {
	ServiceParams
}

func NewNumberFormatService(params ServiceParams) NumberFormatService {
	return &numberFormatService{ServiceParams: params}
}

func (s *numberFormatService) Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	if err := kind.Validate(); err != nil {
		return nil, ierr.WithError(err).WithHint("unknown document kind").Mark(ierr.ErrValidation)
	}

	// inside a transaction the row may be created and later rolled back, so bypass the cache
	cacheable := s.Cache != nil && !database.InTx(ctx)
	if cacheable {
		cached, err := s.Cache.GetNumberFormat(ctx, tenantID, kind)
		if err != nil {
			s.Logger.Warnw("number format cache read failed", "tenant_id", tenantID, "kind", kind, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	format, err := s.NumberFormatRepo.Get(ctx, tenantID, kind)
	if ierr.IsNotFound(err) {
		// a concurrent first access may win the insert; read back whichever row exists
		if err := s.NumberFormatRepo.CreateIfAbsent(ctx, numbering.DefaultFormat(tenantID, kind)); err != nil {
			return nil, err
		}
		s.Logger.Infow("created default number format", "tenant_id", tenantID, "kind", kind)
		format, err = s.NumberFormatRepo.Get(ctx, tenantID, kind)
	}
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.cache(ctx, format)
	}
	return format, nil
}

func (s *numberFormatService) Create(ctx context.Context, format *models.NumberFormat) (*models.NumberFormat, error) {
	numbering.Normalize(format)
	if err := numbering.Validate(format); err != nil {
		return nil, ierr.WithError(err).WithHint(err.Error()).Mark(ierr.ErrValidation)
	}

	if err := s.NumberFormatRepo.Create(ctx, format); err != nil {
		return nil, err
	}

	created, err := s.NumberFormatRepo.Get(ctx, format.BusinessProfileID, format.Kind)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, format.BusinessProfileID, format.Kind)
	return created, nil
}

func (s *numberFormatService) Update(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind, patch models.NumberFormatPatch) (*models.NumberFormat, error) {
	var updated *models.NumberFormat
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		format, err := s.Get(ctx, tenantID, kind)
		if err != nil {
			return err
		}

		numbering.ApplyPatch(format, patch)
		if err := numbering.Validate(format); err != nil {
			return ierr.WithError(err).WithHint(err.Error()).Mark(ierr.ErrValidation)
		}

		if err := s.NumberFormatRepo.Update(ctx, format); err != nil {
			return err
		}
		updated, err = s.NumberFormatRepo.Get(ctx, tenantID, kind)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, tenantID, kind)
	s.Logger.Infow("number format updated", "tenant_id", tenantID, "kind", kind,
		"prefix", updated.Prefix, "include_year", updated.IncludeYear, "is_custom_format", updated.IsCustomFormat)
	return updated, nil
}

func (s *numberFormatService) cache(ctx context.Context, format *models.NumberFormat) {
	if err := s.Cache.SetNumberFormat(ctx, format, s.FormatTTL); err != nil {
		s.Logger.Warnw("number format cache write failed", "tenant_id", format.BusinessProfileID, "kind", format.Kind, "error", err)
	}
}

func (s *numberFormatService) invalidate(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.DeleteNumberFormat(ctx, tenantID, kind); err != nil {
		s.Logger.Warnw("number format cache invalidation failed", "tenant_id", tenantID, "kind", kind, "error", err)
	}
}
