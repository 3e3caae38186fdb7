package pricing

import (
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the scale of every persisted monetary amount
const MoneyPlaces = 2

// stored scales of the user-supplied inputs
const (
	RatePlaces      = 2
	UnitPricePlaces = 4
)

var hundred = decimal.NewFromInt(100)

// Totals holds the derived monetary fields of a document
type Totals struct {
	SubTotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Round rounds half away from zero to two places, which is half-up for non-negative amounts
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// FitsScale reports whether d has no more than places fractional digits
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// LineTotal is quantity × unitPrice rounded per line
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return Round(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// SubTotal sums already-rounded line totals
func SubTotal(items []*models.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return sum
}

// Aggregate computes tax and grand total; taxRate is a percentage
func Aggregate(subTotal, taxRate, discount decimal.Decimal) Totals {
	tax := Round(subTotal.Mul(taxRate).Div(hundred))
	return Totals{
		SubTotal: subTotal,
		Tax:      tax,
		Discount: discount,
		Total:    Round(subTotal.Add(tax).Sub(discount)),
	}
}

// Apply recomputes doc's monetary fields from items
func Apply(doc *models.Document, items []*models.LineItem) {
	t := Aggregate(SubTotal(items), doc.TaxRate, doc.Discount)
	doc.SubTotal = t.SubTotal
	doc.Tax = t.Tax
	doc.Total = t.Total
}
