package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProfileTypeIndividual = "individual"
	ProfileTypeCompany    = "company"
)

// BusinessDetails is the issuer data copied into every document's business snapshot
type BusinessDetails struct {
	ProfileType       string  `json:"profile_type"`
	DisplayName       string  `json:"display_name"`
	LegalName         string  `json:"legal_name"`
	JobPosition       *string `json:"job_position,omitempty"`
	Title             *string `json:"title,omitempty"`
	Mobile            string  `json:"mobile"`
	Phone             *string `json:"phone,omitempty"`
	Website           *string `json:"website,omitempty"`
	VatNumber         string  `json:"vat_number"`
	Street            string  `json:"street"`
	Street2           *string `json:"street2,omitempty"`
	City              string  `json:"city"`
	State             *string `json:"state,omitempty"`
	Zip               *string `json:"zip,omitempty"`
	Country           string  `json:"country"`
	CompanyLogo       *string `json:"company_logo,omitempty"`
	LicenseNumber     *string `json:"license_number,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	IBAN              *string `json:"iban,omitempty"`
	SwiftBIC          *string `json:"swift_bic,omitempty"`
	BankBranchCode    *string `json:"bank_branch_code,omitempty"`
	BankAddress       *string `json:"bank_address,omitempty"`
	BankCity          *string `json:"bank_city,omitempty"`
	BankCountry       *string `json:"bank_country,omitempty"`
}

// BusinessProfile is the tenant. Documents, counters, formats, clients and catalog
// entries are all scoped to one profile.
type BusinessProfile struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	BusinessDetails
	FiscalYearStartMonth int       `json:"fiscal_year_start_month"`
	FiscalYearStartDay   int       `json:"fiscal_year_start_day"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
