package models

import (
	"time"

	"github.com/google/uuid"
)

// NumberFormat is the per-tenant, per-kind rule for rendering document numbers
type NumberFormat struct {
	BusinessProfileID          uuid.UUID    `json:"business_profile_id"`
	Kind                       DocumentKind `json:"kind"`
	Prefix                     string       `json:"prefix"`
	Separator                  string       `json:"separator"`
	PaddingDigits              int          `json:"padding_digits"`
	StartNumber                int64        `json:"start_number"`
	IncludeYear                bool         `json:"include_year"`
	YearSeparator              string       `json:"year_separator"`
	IsCustomFormat             bool         `json:"is_custom_format"`
	UseFiscalYear              bool         `json:"use_fiscal_year"`
	FiscalYearFormat           string       `json:"fiscal_year_format"`
	ResetCounterWithFiscalYear bool         `json:"reset_counter_with_fiscal_year"`
	CreatedAt                  time.Time    `json:"created_at"`
	UpdatedAt                  time.Time    `json:"updated_at"`
}

// NumberFormatPatch is a partial update; nil fields are left unchanged
type NumberFormatPatch struct {
	Prefix                     *string `json:"prefix,omitempty" validate:"omitempty,max=10"`
	Separator                  *string `json:"separator,omitempty" validate:"omitempty,max=5"`
	PaddingDigits              *int    `json:"padding_digits,omitempty" validate:"omitempty,min=1,max=12"`
	StartNumber                *int64  `json:"start_number,omitempty" validate:"omitempty,min=1"`
	IncludeYear                *bool   `json:"include_year,omitempty"`
	YearSeparator              *string `json:"year_separator,omitempty" validate:"omitempty,max=5"`
	IsCustomFormat             *bool   `json:"is_custom_format,omitempty"`
	UseFiscalYear              *bool   `json:"use_fiscal_year,omitempty"`
	FiscalYearFormat           *string `json:"fiscal_year_format,omitempty" validate:"omitempty,max=10"`
	ResetCounterWithFiscalYear *bool   `json:"reset_counter_with_fiscal_year,omitempty"`
}

// DocumentCounter is the last issued sequence number for one tenant and kind
type DocumentCounter struct {
	BusinessProfileID uuid.UUID    `json:"business_profile_id"`
	Kind              DocumentKind `json:"kind"`
	LastNumber        int64        `json:"last_number"`
	FiscalYearLabel   *string      `json:"fiscal_year_label,omitempty"`
	FiscalYearStart   *int         `json:"fiscal_year_start,omitempty"`
	FiscalYearEnd     *int         `json:"fiscal_year_end,omitempty"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
