package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of document dates
const DateLayout = "2006-01-02"

// CreateClientRequest creates a client inline with a document
type CreateClientRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	ContactName *string `json:"contact_name,omitempty" validate:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,max=255,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Country     string  `json:"country" validate:"required,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	VatNumber   *string `json:"vat_number,omitempty" validate:"omitempty,max=50"`
}

func (r *CreateClientRequest) Details() ClientDetails {
	return ClientDetails{
		Name:        r.Name,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Country:     r.Country,
		Address:     r.Address,
		VatNumber:   r.VatNumber,
	}
}

// LineItemRequest is one requested line. Description doubles as the catalog name
// when no business item id is given.
type LineItemRequest struct {
	BusinessItemID *uuid.UUID       `json:"business_item_id,omitempty"`
	Description    string           `json:"description" validate:"required_without=BusinessItemID,max=255"`
	Quantity       int              `json:"quantity" validate:"required,min=1"`
	UnitPrice      *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"number"`
}

// CreateDocumentRequest creates an invoice or a quotation. DueDate applies to invoices,
// ExpirationDate to quotations.
type CreateDocumentRequest struct {
	ClientID       *uuid.UUID           `json:"client_id,omitempty" validate:"required_without=Client"`
	Client         *CreateClientRequest `json:"client,omitempty" validate:"required_without=ClientID"`
	Title          string               `json:"title" validate:"required,max=255"`
	IssueDate      string               `json:"issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate        string               `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate string               `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status         string               `json:"status,omitempty"`
	Currency       string               `json:"currency,omitempty" validate:"omitempty,len=3"`
	TaxRate        *decimal.Decimal     `json:"tax_rate,omitempty" swaggertype:"number"`
	Discount       *decimal.Decimal     `json:"discount,omitempty" swaggertype:"number"`
	Notes          *string              `json:"notes,omitempty"`
	Terms          *string              `json:"terms,omitempty"`
	Items          []LineItemRequest    `json:"items" validate:"required,min=1,dive"`
}

// Deadline returns the raw deadline for kind
func (r *CreateDocumentRequest) Deadline(kind DocumentKind) string {
	if kind == DocumentKindQuotation {
		return r.ExpirationDate
	}
	return r.DueDate
}

// UpdateDocumentRequest is a partial update; nil fields are left unchanged.
// A non-nil Items replaces every line item.
type UpdateDocumentRequest struct {
	Title          *string           `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	IssueDate      *string           `json:"issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate        *string           `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ExpirationDate *string           `json:"expiration_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Currency       *string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	TaxRate        *decimal.Decimal  `json:"tax_rate,omitempty" swaggertype:"number"`
	Discount       *decimal.Decimal  `json:"discount,omitempty" swaggertype:"number"`
	Notes          *string           `json:"notes,omitempty"`
	Terms          *string           `json:"terms,omitempty"`
	Items          []LineItemRequest `json:"items,omitempty" validate:"omitempty,min=1,dive"`
}

// Deadline returns the raw deadline patch for kind
func (r *UpdateDocumentRequest) Deadline(kind DocumentKind) *string {
	if kind == DocumentKindQuotation {
		return r.ExpirationDate
	}
	return r.DueDate
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ExportResult points at an exported document archive
type ExportResult struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
