package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gigsters-app/gigsters/internal/models"
)

// GenerateNumber renders the counter's last number with format f.
// now supplies the calendar year when the format is not fiscal-year based.
func GenerateNumber(f *models.NumberFormat, c *models.DocumentCounter, now time.Time) string {
	var b strings.Builder
	b.WriteString(f.Prefix)
	b.WriteString(f.Separator)

	if f.IncludeYear || !f.IsCustomFormat {
		if f.UseFiscalYear && c.FiscalYearLabel != nil {
			b.WriteString(*c.FiscalYearLabel)
		} else {
			b.WriteString(strconv.Itoa(now.Year()))
		}
		b.WriteString(f.YearSeparator)
	}

	padding := f.PaddingDigits
	if padding < 1 {
		padding = 1
	}
	fmt.Fprintf(&b, "%0*d", padding, c.LastNumber)
	return b.String()
}

// Advance moves c to the next number under f and reports whether a fiscal-year reset happened.
// fy is nil when f does not use fiscal years.
func Advance(c *models.DocumentCounter, f *models.NumberFormat, fy *FiscalYear) bool {
	reset := false
	if fy != nil && f.ResetCounterWithFiscalYear && crossedFiscalYear(c, fy) {
		c.LastNumber = f.StartNumber
		reset = true
	} else {
		next := c.LastNumber + 1
		if next < f.StartNumber {
			next = f.StartNumber
		}
		c.LastNumber = next
	}

	if fy != nil {
		label, start, end := fy.Label, fy.StartYear, fy.EndYear
		c.FiscalYearLabel = &label
		c.FiscalYearStart = &start
		c.FiscalYearEnd = &end
	}
	return reset
}

func crossedFiscalYear(c *models.DocumentCounter, fy *FiscalYear) bool {
	if c.FiscalYearStart != nil {
		return *c.FiscalYearStart != fy.StartYear
	}
	return c.FiscalYearLabel != nil && *c.FiscalYearLabel != fy.Label
}
