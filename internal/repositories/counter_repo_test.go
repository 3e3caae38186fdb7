package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CounterRepoTestSuite struct {
	repoSuite
	repo CounterRepository
}

func (suite *CounterRepoTestSuite) SetupTest() {
	suite.repoSuite.SetupTest()
	suite.repo = NewCounterRepo(suite.db)
}

func TestCounterRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CounterRepoTestSuite))
}

var counterColumns = []string{"business_profile_id", "kind", "last_number", "fiscal_year_label", "fiscal_year_start", "fiscal_year_end", "updated_at"}

func (suite *CounterRepoTestSuite) TestGetOrCreateForUpdate_LocksRow() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO document_counters (business_profile_id, kind, last_number, updated_at)`) + `[\s\S]*ON CONFLICT \(business_profile_id, kind\) DO NOTHING`).
		WithArgs(suite.tenantID, models.DocumentKindInvoice, int64(0)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	suite.mock.ExpectQuery(`FROM document_counters\s+WHERE business_profile_id = \$1 AND kind = \$2\s+FOR UPDATE`).
		WithArgs(suite.tenantID, models.DocumentKindInvoice).
		WillReturnRows(pgxmock.NewRows(counterColumns).
			AddRow(suite.tenantID, "invoice", int64(6), nil, nil, nil, time.Now()))
	suite.mock.ExpectCommit()

	var got *models.DocumentCounter
	err := suite.db.WithTx(suite.context, func(ctx context.Context) error {
		var err error
		got, err = suite.repo.GetOrCreateForUpdate(ctx, suite.tenantID, models.DocumentKindInvoice, 0)
		return err
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(6), got.LastNumber)
	assert.Equal(suite.T(), models.DocumentKindInvoice, got.Kind)
	assert.Nil(suite.T(), got.FiscalYearLabel)
}

func (suite *CounterRepoTestSuite) TestGetOrCreateForUpdate_RequiresTransaction() {
	_, err := suite.repo.GetOrCreateForUpdate(suite.context, suite.tenantID, models.DocumentKindInvoice, 0)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), ierr.Is(err, ierr.ErrSystem))
}

func (suite *CounterRepoTestSuite) TestUpdate_WritesFiscalFields() {
	label := "FY26"
	start, end := 2025, 2026
	counter := &models.DocumentCounter{
		BusinessProfileID: suite.tenantID,
		Kind:              models.DocumentKindQuotation,
		LastNumber:        1,
		FiscalYearLabel:   &label,
		FiscalYearStart:   &start,
		FiscalYearEnd:     &end,
	}

	suite.mock.ExpectExec(`UPDATE document_counters\s+SET last_number = \$1, fiscal_year_label = \$2`).
		WithArgs(int64(1), &label, &start, &end, suite.tenantID, models.DocumentKindQuotation).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(suite.T(), suite.repo.Update(suite.context, counter))
}

func (suite *CounterRepoTestSuite) TestUpdate_MissingRow() {
	counter := &models.DocumentCounter{BusinessProfileID: suite.tenantID, Kind: models.DocumentKindInvoice, LastNumber: 3}

	suite.mock.ExpectExec(`UPDATE document_counters`).
		WithArgs(int64(3), counter.FiscalYearLabel, counter.FiscalYearStart, counter.FiscalYearEnd, suite.tenantID, models.DocumentKindInvoice).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.context, counter)
	assert.True(suite.T(), ierr.IsNotFound(err))
}
