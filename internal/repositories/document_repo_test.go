package repositories

import (
	"regexp"
	"testing"
	"time"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DocumentRepoTestSuite struct {
	repoSuite
	repo DocumentRepository
}

func (suite *DocumentRepoTestSuite) SetupTest() {
	suite.repoSuite.SetupTest()
	suite.repo = NewDocumentRepo(suite.db)
}

func TestDocumentRepoTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentRepoTestSuite))
}

var documentColumns = []string{
	"id", "business_profile_id", "client_id", "quotation_id", "title", "number", "issue_date", "deadline", "status",
	"currency", "sub_total", "tax_rate", "tax", "discount", "total", "notes", "terms", "created_at", "updated_at",
}

func (suite *DocumentRepoTestSuite) invoice() *models.Document {
	clientID := uuid.New()
	doc := &models.Document{
		ID:                uuid.New(),
		Kind:              models.DocumentKindInvoice,
		BusinessProfileID: suite.tenantID,
		ClientID:          &clientID,
		Title:             "Website redesign",
		Number:            "INV-2025-00001",
		IssueDate:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:            models.InvoiceStatusDraft,
		Currency:          "USD",
		SubTotal:          decimal.Zero,
		TaxRate:           decimal.NewFromInt(19),
		Tax:               decimal.Zero,
		Discount:          decimal.Zero,
		Total:             decimal.Zero,
	}
	doc.SetDeadline(doc.IssueDate.AddDate(0, 0, 30))
	return doc
}

func (suite *DocumentRepoTestSuite) TestCreate_InvoiceIncludesQuotationLink() {
	doc := suite.invoice()

	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO invoices (id, business_profile_id, client_id, quotation_id, title, number, issue_date, due_date,`)).
		WithArgs(doc.ID, suite.tenantID, doc.ClientID, doc.QuotationID, doc.Title, doc.Number, doc.IssueDate, doc.DueDate,
			doc.Status, doc.Currency, doc.SubTotal, doc.TaxRate, doc.Tax, doc.Discount, doc.Total, doc.Notes, doc.Terms,
			doc.CreatedAt, doc.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(suite.T(), suite.repo.Create(suite.context, doc))
}

func (suite *DocumentRepoTestSuite) TestCreate_QuotationUsesExpirationDate() {
	doc := suite.invoice()
	doc.Kind = models.DocumentKindQuotation
	doc.SetDeadline(doc.IssueDate.AddDate(0, 0, 14))

	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO quotations (id, business_profile_id, client_id, title, number, issue_date, expiration_date,`)).
		WithArgs(doc.ID, suite.tenantID, doc.ClientID, doc.Title, doc.Number, doc.IssueDate, doc.ExpirationDate,
			doc.Status, doc.Currency, doc.SubTotal, doc.TaxRate, doc.Tax, doc.Discount, doc.Total, doc.Notes, doc.Terms,
			doc.CreatedAt, doc.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(suite.T(), suite.repo.Create(suite.context, doc))
}

func (suite *DocumentRepoTestSuite) TestCreate_DuplicateNumberIsConflictOnNumber() {
	doc := suite.invoice()

	suite.mock.ExpectExec(`INSERT INTO invoices`).
		WithArgs(anyArgs(19)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "invoices_profile_number_key"})

	err := suite.repo.Create(suite.context, doc)
	assert.True(suite.T(), ierr.IsAlreadyExists(err))
	assert.Equal(suite.T(), "invoice with this number already exists", ierr.DisplayMessage(err))
}

func (suite *DocumentRepoTestSuite) TestGetByIDForUpdate_Quotation() {
	id := uuid.New()
	clientID := uuid.New()
	issue := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	expires := issue.AddDate(0, 0, 14)
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT id, business_profile_id, client_id, NULL::uuid, [\s\S]*expiration_date[\s\S]*FROM quotations WHERE business_profile_id = \$1 AND id = \$2 FOR UPDATE`).
		WithArgs(suite.tenantID, id).
		WillReturnRows(pgxmock.NewRows(documentColumns).AddRow(
			id, suite.tenantID, &clientID, nil, "Offer", "QUO-2025-001", issue, &expires, models.QuotationStatusAccepted,
			"EUR", decimal.RequireFromString("100"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.RequireFromString("100"),
			nil, nil, now, now,
		))

	doc, err := suite.repo.GetByIDForUpdate(suite.context, models.DocumentKindQuotation, suite.tenantID, id)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DocumentKindQuotation, doc.Kind)
	assert.Equal(suite.T(), models.QuotationStatusAccepted, doc.Status)
	assert.Equal(suite.T(), expires, *doc.ExpirationDate)
	assert.Nil(suite.T(), doc.DueDate)
	assert.Nil(suite.T(), doc.QuotationID)
}

func (suite *DocumentRepoTestSuite) TestUpdateStatus_NotFound() {
	id := uuid.New()
	suite.mock.ExpectExec(`UPDATE quotations SET status = \$1`).
		WithArgs(models.QuotationStatusInvoiced, suite.tenantID, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.UpdateStatus(suite.context, models.DocumentKindQuotation, suite.tenantID, id, models.QuotationStatusInvoiced)
	assert.True(suite.T(), ierr.IsNotFound(err))
	assert.Equal(suite.T(), "quotation not found", ierr.DisplayMessage(err))
}

func (suite *DocumentRepoTestSuite) TestUnknownKindIsValidationError() {
	_, err := suite.repo.GetByID(suite.context, models.DocumentKind("receipt"), suite.tenantID, uuid.New())
	assert.True(suite.T(), ierr.IsValidation(err))
}
