package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem belongs to exactly one document
type LineItem struct {
	ID             uuid.UUID       `json:"id"`
	DocumentID     uuid.UUID       `json:"document_id"`
	BusinessItemID *uuid.UUID      `json:"business_item_id,omitempty"`
	Position       int             `json:"position"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Total          decimal.Decimal `json:"total"`
}
