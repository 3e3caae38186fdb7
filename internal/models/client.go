package models

import (
	"time"

	"github.com/google/uuid"
)

// Client receives documents issued by a business profile
type Client struct {
	ID                uuid.UUID `json:"id"`
	BusinessProfileID uuid.UUID `json:"business_profile_id"`
	ClientDetails
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientDetails is the recipient data copied into every document's client snapshot
type ClientDetails struct {
	Name        string  `json:"name"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Country     string  `json:"country"`
	Address     *string `json:"address,omitempty"`
	VatNumber   *string `json:"vat_number,omitempty"`
}
