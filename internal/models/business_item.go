package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessItem is a reusable catalog entry
type BusinessItem struct {
	ID                uuid.UUID       `json:"id"`
	BusinessProfileID uuid.UUID       `json:"business_profile_id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description,omitempty"`
	DefaultUnitPrice  decimal.Decimal `json:"default_unit_price"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
