package services

import (
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/samber/lo"
)

// allowed explicit status moves; INVOICED is reachable only through conversion
var statusTransitions = map[models.DocumentKind]map[string][]string{
	models.DocumentKindInvoice: {
		models.InvoiceStatusDraft:   {models.InvoiceStatusPending, models.InvoiceStatusCancelled},
		models.InvoiceStatusPending: {models.InvoiceStatusPaid, models.InvoiceStatusOverdue, models.InvoiceStatusCancelled},
		models.InvoiceStatusOverdue: {models.InvoiceStatusPaid, models.InvoiceStatusCancelled},
	},
	models.DocumentKindQuotation: {
		models.QuotationStatusDraft: {models.QuotationStatusSent},
		models.QuotationStatusSent: {
			models.QuotationStatusAccepted, models.QuotationStatusRejected,
			models.QuotationStatusExpired, models.QuotationStatusCancelled,
		},
	},
}

func canTransition(kind models.DocumentKind, from, to string) bool {
	return lo.Contains(statusTransitions[kind][from], to)
}

// locked documents accept no edits to their content
func isEditable(doc *models.Document) bool {
	if doc.Kind == models.DocumentKindQuotation {
		return doc.Status != models.QuotationStatusInvoiced
	}
	return doc.Status != models.InvoiceStatusPaid && doc.Status != models.InvoiceStatusCancelled
}
