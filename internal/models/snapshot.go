package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessSnapshot is the issuer as it was when the document was created.
// It is written once with its document and never updated.
type BusinessSnapshot struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	BusinessDetails
	CreatedAt time.Time `json:"created_at"`
}

// ClientSnapshot is the recipient as it was when the document was created.
// It is written once with its document and never updated.
type ClientSnapshot struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	ClientDetails
	CreatedAt time.Time `json:"created_at"`
}

// CaptureBusiness copies every issuer field of profile into a new snapshot for documentID
func CaptureBusiness(documentID uuid.UUID, profile *BusinessProfile) BusinessSnapshot {
	return BusinessSnapshot{
		ID:              uuid.New(),
		DocumentID:      documentID,
		BusinessDetails: profile.BusinessDetails.clone(),
	}
}

// CaptureClient copies every recipient field of client into a new snapshot for documentID
func CaptureClient(documentID uuid.UUID, client *Client) ClientSnapshot {
	return ClientSnapshot{
		ID:            uuid.New(),
		DocumentID:    documentID,
		ClientDetails: client.ClientDetails.clone(),
	}
}

func (d BusinessDetails) clone() BusinessDetails {
	c := d
	c.JobPosition = cloneString(d.JobPosition)
	c.Title = cloneString(d.Title)
	c.Phone = cloneString(d.Phone)
	c.Website = cloneString(d.Website)
	c.Street2 = cloneString(d.Street2)
	c.State = cloneString(d.State)
	c.Zip = cloneString(d.Zip)
	c.CompanyLogo = cloneString(d.CompanyLogo)
	c.LicenseNumber = cloneString(d.LicenseNumber)
	c.BankName = cloneString(d.BankName)
	c.BankAccountNumber = cloneString(d.BankAccountNumber)
	c.IBAN = cloneString(d.IBAN)
	c.SwiftBIC = cloneString(d.SwiftBIC)
	c.BankBranchCode = cloneString(d.BankBranchCode)
	c.BankAddress = cloneString(d.BankAddress)
	c.BankCity = cloneString(d.BankCity)
	c.BankCountry = cloneString(d.BankCountry)
	return c
}

func (d ClientDetails) clone() ClientDetails {
	c := d
	c.ContactName = cloneString(d.ContactName)
	c.Email = cloneString(d.Email)
	c.Phone = cloneString(d.Phone)
	c.Address = cloneString(d.Address)
	c.VatNumber = cloneString(d.VatNumber)
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
