package numbering

import (
	"testing"
	"time"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestGenerateNumber(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		format  models.NumberFormat
		counter models.DocumentCounter
		want    string
	}{
		{
			name:    "invoice default",
			format:  models.NumberFormat{Prefix: "INV", Separator: "-", PaddingDigits: 5, IncludeYear: true, YearSeparator: "-"},
			counter: models.DocumentCounter{LastNumber: 7},
			want:    "INV-2025-00007",
		},
		{
			name:    "quotation default",
			format:  *DefaultFormat(uuid.New(), models.DocumentKindQuotation),
			counter: models.DocumentCounter{LastNumber: 12},
			want:    "QUO-2025-012",
		},
		{
			name:    "custom format without year",
			format:  models.NumberFormat{Prefix: "A", Separator: "/", PaddingDigits: 4, IsCustomFormat: true, YearSeparator: "-"},
			counter: models.DocumentCounter{LastNumber: 42},
			want:    "A/0042",
		},
		{
			name:    "non-custom format always carries the year",
			format:  models.NumberFormat{Prefix: "INV", Separator: "-", PaddingDigits: 3, IncludeYear: false, YearSeparator: "/"},
			counter: models.DocumentCounter{LastNumber: 1},
			want:    "INV-2025/001",
		},
		{
			name:    "fiscal year label replaces calendar year",
			format:  models.NumberFormat{Prefix: "INV", Separator: "-", PaddingDigits: 5, IncludeYear: true, YearSeparator: "-", UseFiscalYear: true},
			counter: models.DocumentCounter{LastNumber: 3, FiscalYearLabel: lo.ToPtr("FY26")},
			want:    "INV-FY26-00003",
		},
		{
			name:    "number wider than padding is not truncated",
			format:  models.NumberFormat{Prefix: "Q", Separator: "", PaddingDigits: 2, IsCustomFormat: true},
			counter: models.DocumentCounter{LastNumber: 1234},
			want:    "Q1234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateNumber(&tt.format, &tt.counter, now))
		})
	}
}

func TestGenerateNumber_IsDeterministic(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	c := &models.DocumentCounter{LastNumber: 99}
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	first := GenerateNumber(f, c, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateNumber(f, c, now))
	}
}

func TestAdvance_Increments(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	c := &models.DocumentCounter{LastNumber: 0}

	for want := int64(1); want <= 5; want++ {
		reset := Advance(c, f, nil)
		assert.False(t, reset)
		assert.Equal(t, want, c.LastNumber)
	}
	assert.Nil(t, c.FiscalYearLabel)
}

func TestAdvance_JumpsToRaisedStartNumber(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.StartNumber = 1000
	c := &models.DocumentCounter{LastNumber: 17}

	Advance(c, f, nil)
	assert.Equal(t, int64(1000), c.LastNumber)

	f.StartNumber = 5
	Advance(c, f, nil)
	assert.Equal(t, int64(1001), c.LastNumber)
}

func TestAdvance_FiscalYearReset(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.UseFiscalYear = true
	f.ResetCounterWithFiscalYear = true
	f.StartNumber = 1

	fy25 := FiscalYearFor(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}")
	fy26 := FiscalYearFor(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}")

	c := &models.DocumentCounter{LastNumber: 0}
	assert.False(t, Advance(c, f, &fy25))
	assert.Equal(t, int64(1), c.LastNumber)
	assert.Equal(t, "FY25", *c.FiscalYearLabel)

	assert.False(t, Advance(c, f, &fy25))
	assert.Equal(t, int64(2), c.LastNumber)

	assert.True(t, Advance(c, f, &fy26))
	assert.Equal(t, int64(1), c.LastNumber)
	assert.Equal(t, "FY26", *c.FiscalYearLabel)
	assert.Equal(t, 2025, *c.FiscalYearStart)
	assert.Equal(t, 2026, *c.FiscalYearEnd)

	// only once per boundary
	assert.False(t, Advance(c, f, &fy26))
	assert.Equal(t, int64(2), c.LastNumber)
}

func TestAdvance_FiscalYearWithoutResetKeepsCounting(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.UseFiscalYear = true

	fy25 := FiscalYearFor(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}")
	fy26 := FiscalYearFor(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}")

	c := &models.DocumentCounter{LastNumber: 9}
	Advance(c, f, &fy25)
	assert.False(t, Advance(c, f, &fy26))
	assert.Equal(t, int64(11), c.LastNumber)
	assert.Equal(t, "FY26", *c.FiscalYearLabel)
}

func TestAdvance_FirstStampNeverResets(t *testing.T) {
	f := DefaultFormat(uuid.New(), models.DocumentKindInvoice)
	f.UseFiscalYear = true
	f.ResetCounterWithFiscalYear = true

	fy := FiscalYearFor(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 1, 1, "")
	c := &models.DocumentCounter{LastNumber: 40}

	assert.False(t, Advance(c, f, &fy))
	assert.Equal(t, int64(41), c.LastNumber)
	assert.Equal(t, "FY25", *c.FiscalYearLabel)
}
