package repositories

import (
	"fmt"

	"github.com/gigsters-app/gigsters/internal/models"
)

// documentTables names the storage of one document kind. Identifiers come from this
// fixed set only and are safe to interpolate into SQL.
type documentTables struct {
	documents         string
	items             string
	businessSnapshots string
	clientSnapshots   string
	deadlineColumn    string
	hasQuotationLink  bool
}

var tablesByKind = map[models.DocumentKind]documentTables{
	models.DocumentKindInvoice: {
		documents:         "invoices",
		items:             "invoice_items",
		businessSnapshots: "invoice_business_snapshots",
		clientSnapshots:   "invoice_client_snapshots",
		deadlineColumn:    "due_date",
		hasQuotationLink:  true,
	},
	models.DocumentKindQuotation: {
		documents:         "quotations",
		items:             "quotation_items",
		businessSnapshots: "quotation_business_snapshots",
		clientSnapshots:   "quotation_client_snapshots",
		deadlineColumn:    "expiration_date",
	},
}

func tablesFor(kind models.DocumentKind) (documentTables, error) {
	t, ok := tablesByKind[kind]
	if !ok {
		return documentTables{}, fmt.Errorf("unknown document kind %q", kind)
	}
	return t, nil
}

const businessDetailsColumns = `profile_type, display_name, legal_name, job_position, title, mobile, phone, website,
	vat_number, street, street2, city, state, zip, country, company_logo, license_number,
	bank_name, bank_account_number, iban, swift_bic, bank_branch_code, bank_address, bank_city, bank_country`

func businessDetailsDest(d *models.BusinessDetails) []any {
	return []any{
		&d.ProfileType, &d.DisplayName, &d.LegalName, &d.JobPosition, &d.Title, &d.Mobile, &d.Phone, &d.Website,
		&d.VatNumber, &d.Street, &d.Street2, &d.City, &d.State, &d.Zip, &d.Country, &d.CompanyLogo, &d.LicenseNumber,
		&d.BankName, &d.BankAccountNumber, &d.IBAN, &d.SwiftBIC, &d.BankBranchCode, &d.BankAddress, &d.BankCity, &d.BankCountry,
	}
}

func businessDetailsArgs(d models.BusinessDetails) []any {
	return []any{
		d.ProfileType, d.DisplayName, d.LegalName, d.JobPosition, d.Title, d.Mobile, d.Phone, d.Website,
		d.VatNumber, d.Street, d.Street2, d.City, d.State, d.Zip, d.Country, d.CompanyLogo, d.LicenseNumber,
		d.BankName, d.BankAccountNumber, d.IBAN, d.SwiftBIC, d.BankBranchCode, d.BankAddress, d.BankCity, d.BankCountry,
	}
}

const clientDetailsColumns = `name, contact_name, email, phone, country, address, vat_number`

func clientDetailsDest(d *models.ClientDetails) []any {
	return []any{&d.Name, &d.ContactName, &d.Email, &d.Phone, &d.Country, &d.Address, &d.VatNumber}
}

func clientDetailsArgs(d models.ClientDetails) []any {
	return []any{d.Name, d.ContactName, d.Email, d.Phone, d.Country, d.Address, d.VatNumber}
}

// placeholders returns "$from, $from+1, ..." for n parameters
func placeholders(from, n int) string {
	s := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("$%d", from+i)
	}
	return s
}
