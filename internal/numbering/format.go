package numbering

import (
	"fmt"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
)

const DefaultFiscalYearFormat = "FY{YY}"

// DefaultFormat is the format a tenant gets on first use of a document kind
func DefaultFormat(tenantID uuid.UUID, kind models.DocumentKind) *models.NumberFormat {
	f := &models.NumberFormat{
		BusinessProfileID: tenantID,
		Kind:              kind,
		Prefix:            "INV",
		Separator:         "-",
		PaddingDigits:     5,
		StartNumber:       1,
		IncludeYear:       true,
		YearSeparator:     "-",
		FiscalYearFormat:  DefaultFiscalYearFormat,
	}
	if kind == models.DocumentKindQuotation {
		f.Prefix = "QUO"
		f.PaddingDigits = 3
	}
	return f
}

// ApplyPatch merges p into f field by field and re-establishes the mandatory-year rule
func ApplyPatch(f *models.NumberFormat, p models.NumberFormatPatch) {
	if p.Prefix != nil {
		f.Prefix = *p.Prefix
	}
	if p.Separator != nil {
		f.Separator = *p.Separator
	}
	if p.PaddingDigits != nil {
		f.PaddingDigits = *p.PaddingDigits
	}
	if p.StartNumber != nil {
		f.StartNumber = *p.StartNumber
	}
	if p.IncludeYear != nil {
		f.IncludeYear = *p.IncludeYear
	}
	if p.YearSeparator != nil {
		f.YearSeparator = *p.YearSeparator
	}
	if p.IsCustomFormat != nil {
		f.IsCustomFormat = *p.IsCustomFormat
	}
	if p.UseFiscalYear != nil {
		f.UseFiscalYear = *p.UseFiscalYear
	}
	if p.FiscalYearFormat != nil {
		f.FiscalYearFormat = *p.FiscalYearFormat
	}
	if p.ResetCounterWithFiscalYear != nil {
		f.ResetCounterWithFiscalYear = *p.ResetCounterWithFiscalYear
	}
	Normalize(f)
}

// Normalize forces includeYear for non-custom formats and fills an empty fiscal-year format
func Normalize(f *models.NumberFormat) {
	if !f.IsCustomFormat {
		f.IncludeYear = true
	}
	if f.FiscalYearFormat == "" {
		f.FiscalYearFormat = DefaultFiscalYearFormat
	}
}

// Validate checks the numeric bounds of a format
func Validate(f *models.NumberFormat) error {
	if err := f.Kind.Validate(); err != nil {
		return err
	}
	if f.PaddingDigits < 1 {
		return fmt.Errorf("padding_digits must be at least 1")
	}
	if f.StartNumber < 1 {
		return fmt.Errorf("start_number must be at least 1")
	}
	if !f.IsCustomFormat && !f.IncludeYear {
		return fmt.Errorf("include_year is required unless is_custom_format is set")
	}
	return nil
}
