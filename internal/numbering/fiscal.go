package numbering

import (
	"fmt"
	"strings"
	"time"
)

// FiscalYear identifies the fiscal year containing a date.
// StartYear is the calendar year it begins in, EndYear the one it ends in.
type FiscalYear struct {
	StartYear int
	EndYear   int
	Label     string
}

// FiscalYearFor returns the fiscal year containing t for a year starting on startMonth/startDay.
// Zero month or day means January 1st.
func FiscalYearFor(t time.Time, startMonth, startDay int, labelFormat string) FiscalYear {
	if startMonth < 1 || startMonth > 12 {
		startMonth = 1
	}
	if startDay < 1 || startDay > 31 {
		startDay = 1
	}

	start := t.Year()
	m, d := int(t.Month()), t.Day()
	if m < startMonth || (m == startMonth && d < startDay) {
		start--
	}

	end := start
	if startMonth != 1 || startDay != 1 {
		end = start + 1
	}

	return FiscalYear{
		StartYear: start,
		EndYear:   end,
		Label:     FormatFiscalLabel(labelFormat, start, end),
	}
}

// FormatFiscalLabel expands {YYYY}, {YY}, {SYYYY} and {SYY} in format.
// The unprefixed placeholders refer to the end year.
func FormatFiscalLabel(format string, startYear, endYear int) string {
	if format == "" {
		format = DefaultFiscalYearFormat
	}
	r := strings.NewReplacer(
		"{SYYYY}", fmt.Sprintf("%04d", startYear),
		"{SYY}", fmt.Sprintf("%02d", startYear%100),
		"{YYYY}", fmt.Sprintf("%04d", endYear),
		"{YY}", fmt.Sprintf("%02d", endYear%100),
	)
	return r.Replace(format)
}
