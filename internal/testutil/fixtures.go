package testutil

import (
	"time"

	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// NewProfile returns a fully populated business profile with a calendar fiscal year
func NewProfile() *models.BusinessProfile {
	now := time.Now().UTC()
	return &models.BusinessProfile{
		ID:     uuid.New(),
		UserID: uuid.New(),
		BusinessDetails: models.BusinessDetails{
			ProfileType:       models.ProfileTypeCompany,
			DisplayName:       "Northwind Studio",
			LegalName:         "Northwind Studio GmbH",
			Mobile:            "+49 151 0000000",
			VatNumber:         "DE123456789",
			Street:            "Hauptstrasse 1",
			Street2:           lo.ToPtr("2nd floor"),
			City:              "Berlin",
			Zip:               lo.ToPtr("10115"),
			Country:           "DE",
			BankName:          lo.ToPtr("Demo Bank"),
			IBAN:              lo.ToPtr("DE89370400440532013000"),
			SwiftBIC:          lo.ToPtr("COBADEFFXXX"),
			BankAccountNumber: lo.ToPtr("0532013000"),
		},
		FiscalYearStartMonth: 1,
		FiscalYearStartDay:   1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// NewClient returns a client of tenantID
func NewClient(tenantID uuid.UUID) *models.Client {
	now := time.Now().UTC()
	return &models.Client{
		ID:                uuid.New(),
		BusinessProfileID: tenantID,
		ClientDetails: models.ClientDetails{
			Name:        "Acme Corp",
			ContactName: lo.ToPtr("Jane Doe"),
			Email:       lo.ToPtr("billing@acme.test"),
			Country:     "US",
			Address:     lo.ToPtr("123 Main St, Springfield"),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewBusinessItem returns a catalog entry of tenantID priced at price
func NewBusinessItem(tenantID uuid.UUID, name, price string) *models.BusinessItem {
	now := time.Now().UTC()
	return &models.BusinessItem{
		ID:                uuid.New(),
		BusinessProfileID: tenantID,
		Name:              name,
		DefaultUnitPrice:  decimal.RequireFromString(price),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Line builds a line item request priced at price; an empty price leaves it unset
func Line(description string, quantity int, price string) models.LineItemRequest {
	line := models.LineItemRequest{Description: description, Quantity: quantity}
	if price != "" {
		line.UnitPrice = lo.ToPtr(decimal.RequireFromString(price))
	}
	return line
}
