package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes the two numbered document types
type DocumentKind string

const (
	DocumentKindInvoice   DocumentKind = "invoice"
	DocumentKindQuotation DocumentKind = "quotation"
)

func (k DocumentKind) String() string {
	return string(k)
}

func (k DocumentKind) Validate() error {
	switch k {
	case DocumentKindInvoice, DocumentKindQuotation:
		return nil
	}
	return fmt.Errorf("unknown document kind %q", string(k))
}

const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusPending   = "PENDING"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusOverdue   = "OVERDUE"
	InvoiceStatusCancelled = "CANCELLED"
)

const (
	QuotationStatusDraft     = "DRAFT"
	QuotationStatusSent      = "SENT"
	QuotationStatusAccepted  = "ACCEPTED"
	QuotationStatusRejected  = "REJECTED"
	QuotationStatusExpired   = "EXPIRED"
	QuotationStatusCancelled = "CANCELLED"
	QuotationStatusInvoiced  = "INVOICED"
)

const DefaultCurrency = "USD"

var validStatuses = map[DocumentKind]map[string]bool{
	DocumentKindInvoice: {
		InvoiceStatusDraft: true, InvoiceStatusPending: true, InvoiceStatusPaid: true,
		InvoiceStatusOverdue: true, InvoiceStatusCancelled: true,
	},
	DocumentKindQuotation: {
		QuotationStatusDraft: true, QuotationStatusSent: true, QuotationStatusAccepted: true,
		QuotationStatusRejected: true, QuotationStatusExpired: true, QuotationStatusCancelled: true,
		QuotationStatusInvoiced: true,
	},
}

// IsValidStatus reports whether status belongs to the kind's status set
func IsValidStatus(kind DocumentKind, status string) bool {
	return validStatuses[kind][status]
}

// Document is an Invoice or a Quotation. Invoices carry DueDate, quotations ExpirationDate.
type Document struct {
	ID                uuid.UUID       `json:"id"`
	Kind              DocumentKind    `json:"kind"`
	BusinessProfileID uuid.UUID       `json:"business_profile_id"`
	ClientID          *uuid.UUID      `json:"client_id,omitempty"`
	QuotationID       *uuid.UUID      `json:"quotation_id,omitempty"`
	Title             string          `json:"title"`
	Number            string          `json:"number"`
	IssueDate         time.Time       `json:"issue_date"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	ExpirationDate    *time.Time      `json:"expiration_date,omitempty"`
	Status            string          `json:"status"`
	Currency          string          `json:"currency"`
	SubTotal          decimal.Decimal `json:"sub_total"`
	TaxRate           decimal.Decimal `json:"tax_rate"`
	Tax               decimal.Decimal `json:"tax"`
	Discount          decimal.Decimal `json:"discount"`
	Total             decimal.Decimal `json:"total"`
	Notes             *string         `json:"notes,omitempty"`
	Terms             *string         `json:"terms,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	BusinessSnapshot *BusinessSnapshot `json:"business_snapshot,omitempty"`
	ClientSnapshot   *ClientSnapshot   `json:"client_snapshot,omitempty"`
	Items            []*LineItem       `json:"items,omitempty"`
}

// Deadline returns the due date of an invoice or the expiration date of a quotation
func (d *Document) Deadline() time.Time {
	if d.Kind == DocumentKindQuotation {
		if d.ExpirationDate != nil {
			return *d.ExpirationDate
		}
		return time.Time{}
	}
	if d.DueDate != nil {
		return *d.DueDate
	}
	return time.Time{}
}

// SetDeadline stores t in the date field matching the document kind
func (d *Document) SetDeadline(t time.Time) {
	if d.Kind == DocumentKindQuotation {
		d.ExpirationDate = &t
		d.DueDate = nil
		return
	}
	d.DueDate = &t
	d.ExpirationDate = nil
}
