package common

import (
	"testing"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_CreateDocument(t *testing.T) {
	clientID := uuid.New()

	valid := models.CreateDocumentRequest{
		ClientID: &clientID,
		Title:    "Website redesign",
		DueDate:  "2025-05-15",
		Items:    []models.LineItemRequest{{Description: "Design", Quantity: 2}},
	}
	assert.NoError(t, ValidateStruct(&valid))

	missingClient := valid
	missingClient.ClientID = nil
	err := ValidateStruct(&missingClient)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "is required", ierr.ReportableDetails(err)["client_id"])

	noItems := valid
	noItems.Items = nil
	err = ValidateStruct(&noItems)
	assert.True(t, ierr.IsValidation(err))
	assert.Contains(t, ierr.ReportableDetails(err), "items")

	badDate := valid
	badDate.DueDate = "15/05/2025"
	err = ValidateStruct(&badDate)
	assert.Equal(t, "must be a date in YYYY-MM-DD format", ierr.ReportableDetails(err)["due_date"])

	zeroQuantity := valid
	zeroQuantity.Items = []models.LineItemRequest{{Description: "Design", Quantity: 0}}
	err = ValidateStruct(&zeroQuantity)
	assert.Contains(t, ierr.ReportableDetails(err), "items[0].quantity")
}

func TestValidateStruct_InlineClient(t *testing.T) {
	req := models.CreateDocumentRequest{
		Client: &models.CreateClientRequest{Name: "Acme", Country: "DE", Email: strPtr("not-an-email")},
		Title:  "Offer",
		Items:  []models.LineItemRequest{{Description: "Design", Quantity: 1}},
	}
	err := ValidateStruct(&req)
	assert.True(t, ierr.IsValidation(err))
	assert.Equal(t, "must be a valid email address", ierr.ReportableDetails(err)["client.email"])

	req.Client.Email = strPtr("billing@acme.test")
	assert.NoError(t, ValidateStruct(&req))
}

func TestValidateStruct_LineWithCatalogIDNeedsNoDescription(t *testing.T) {
	id := uuid.New()
	item := models.LineItemRequest{BusinessItemID: &id, Quantity: 1}
	assert.NoError(t, ValidateStruct(&item))

	item.BusinessItemID = nil
	assert.Error(t, ValidateStruct(&item))
}

func TestValidatePaginationParams(t *testing.T) {
	limit, offset, err := ValidatePaginationParams(0, -5)
	assert.NoError(t, err)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, _, _ = ValidatePaginationParams(5000, 0)
	assert.Equal(t, 1000, limit)

	_, _, err = ValidatePaginationParams(10, 2000000)
	assert.Error(t, err)
}

func TestValidateUUID(t *testing.T) {
	id := uuid.New()
	got, err := ValidateUUID(" "+id.String()+" ", "id")
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ValidateUUID("", "id")
	assert.EqualError(t, err, "id is required")

	_, err = ValidateUUID("1234", "id")
	assert.Error(t, err)
}

func strPtr(s string) *string {
	return &s
}
