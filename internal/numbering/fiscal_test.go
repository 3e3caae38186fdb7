package numbering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiscalYearFor(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		startMonth int
		startDay   int
		format     string
		wantStart  int
		wantEnd    int
		wantLabel  string
	}{
		{"calendar year", time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), 1, 1, "FY{YY}", 2025, 2025, "FY25"},
		{"zero start means january", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0, 0, "FY{YYYY}", 2025, 2025, "FY2025"},
		{"april start after boundary", time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}", 2025, 2026, "FY26"},
		{"april start before boundary", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}", 2024, 2025, "FY25"},
		{"on the boundary day", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 4, 1, "FY{YY}", 2025, 2026, "FY26"},
		{"mid-month start", time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), 7, 15, "{SYY}-{YY}", 2024, 2025, "24-25"},
		{"start and end years", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 10, 1, "{SYYYY}/{YYYY}", 2025, 2026, "2025/2026"},
		{"empty format uses default", time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC), 1, 1, "", 2030, 2030, "FY30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fy := FiscalYearFor(tt.date, tt.startMonth, tt.startDay, tt.format)
			assert.Equal(t, tt.wantStart, fy.StartYear)
			assert.Equal(t, tt.wantEnd, fy.EndYear)
			assert.Equal(t, tt.wantLabel, fy.Label)
		})
	}
}
