package numbering

import (
	"testing"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFormat(t *testing.T) {
	tenantID := uuid.New()

	inv := DefaultFormat(tenantID, models.DocumentKindInvoice)
	assert.Equal(t, tenantID, inv.BusinessProfileID)
	assert.Equal(t, "INV", inv.Prefix)
	assert.Equal(t, "-", inv.Separator)
	assert.Equal(t, 5, inv.PaddingDigits)
	assert.Equal(t, int64(1), inv.StartNumber)
	assert.True(t, inv.IncludeYear)
	assert.False(t, inv.IsCustomFormat)
	assert.NoError(t, Validate(inv))

	quo := DefaultFormat(tenantID, models.DocumentKindQuotation)
	assert.Equal(t, "QUO", quo.Prefix)
	assert.Equal(t, 3, quo.PaddingDigits)
	assert.True(t, quo.IncludeYear)
}

func TestApplyPatch_NonCustomForcesYear(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.IsCustomFormat = true
	f.IncludeYear = false

	ApplyPatch(f, models.NumberFormatPatch{
		IsCustomFormat: lo.ToPtr(false),
		IncludeYear:    lo.ToPtr(false),
	})

	assert.False(t, f.IsCustomFormat)
	assert.True(t, f.IncludeYear)
}

func TestApplyPatch_CustomFormatMayDropYear(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)

	ApplyPatch(f, models.NumberFormatPatch{
		IsCustomFormat: lo.ToPtr(true),
		IncludeYear:    lo.ToPtr(false),
	})

	assert.True(t, f.IsCustomFormat)
	assert.False(t, f.IncludeYear)
}

func TestApplyPatch_OnlyPresentFieldsChange(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindQuotation)

	ApplyPatch(f, models.NumberFormatPatch{
		Prefix:        lo.ToPtr("OFF"),
		PaddingDigits: lo.ToPtr(6),
	})

	assert.Equal(t, "OFF", f.Prefix)
	assert.Equal(t, 6, f.PaddingDigits)
	assert.Equal(t, "-", f.Separator)
	assert.Equal(t, "-", f.YearSeparator)
	assert.Equal(t, int64(1), f.StartNumber)
	assert.Equal(t, DefaultFiscalYearFormat, f.FiscalYearFormat)
}

func TestApplyPatch_EmptyFiscalFormatFallsBack(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)

	ApplyPatch(f, models.NumberFormatPatch{FiscalYearFormat: lo.ToPtr("")})

	assert.Equal(t, DefaultFiscalYearFormat, f.FiscalYearFormat)
}

func TestValidate(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.PaddingDigits = 0
	assert.Error(t, Validate(f))

	f = DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.StartNumber = 0
	assert.Error(t, Validate(f))

	f = DefaultFormat(uuid.New(), models.DocumentKind("receipt"))
	assert.Error(t, Validate(f))
}
