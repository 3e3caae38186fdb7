package services

import (
	"context"

	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/numbering"
)

// NumberingService allocates document numbers. NextNumber must run inside a transaction:
// the counter row stays locked until that transaction ends, and a rollback undoes the increment.
type NumberingService interface {
	NextNumber(ctx context.Context, profile *models.BusinessProfile, kind models.DocumentKind) (string, error)
}

type numberingService struct {
	ServiceParams
	formats NumberFormatService
}

func NewNumberingService(params ServiceParams, formats NumberFormatService) NumberingService {
	return &numberingService{ServiceParams: params, formats: formats}
}

func (s *numberingService) NextNumber(ctx context.Context, profile *models.BusinessProfile, kind models.DocumentKind) (string, error) {
	format, err := s.formats.Get(ctx, profile.ID, kind)
	if err != nil {
		return "", err
	}

	counter, err := s.CounterRepo.GetOrCreateForUpdate(ctx, profile.ID, kind, format.StartNumber-1)
	if err != nil {
		return "", err
	}

	now := s.now()
	var fy *numbering.FiscalYear
	if format.UseFiscalYear {
		current := numbering.FiscalYearFor(now, profile.FiscalYearStartMonth, profile.FiscalYearStartDay, format.FiscalYearFormat)
		fy = &current
	}

	if reset := numbering.Advance(counter, format, fy); reset {
		s.Logger.Infow("document counter reset for new fiscal year",
			"tenant_id", profile.ID, "kind", kind, "fiscal_year", fy.Label, "last_number", counter.LastNumber)
	}

	if err := s.CounterRepo.Update(ctx, counter); err != nil {
		return "", err
	}

	number := numbering.GenerateNumber(format, counter, now)
	s.Logger.Debugw("allocated document number", "tenant_id", profile.ID, "kind", kind, "number", number)
	return number, nil
}
