package services

import (
	"context"
	"testing"
	"time"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/numbering"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NumberFormatServiceTestSuite struct {
	suite.Suite
	service  NumberFormatService
	repo     *MockNumberFormatRepository
	cache    *MockCacheService
	tenantID uuid.UUID
	context  context.Context
}

func (suite *NumberFormatServiceTestSuite) SetupTest() {
	suite.repo = new(MockNumberFormatRepository)
	suite.cache = new(MockCacheService)
	suite.tenantID = uuid.New()
	suite.context = context.Background()
	suite.service = NewNumberFormatService(ServiceParams{
		Logger:           logger.NewNopLogger(),
		DB:               passthroughTx{},
		Cache:            suite.cache,
		FormatTTL:        time.Hour,
		NumberFormatRepo: suite.repo,
	})
}

func (suite *NumberFormatServiceTestSuite) TearDownTest() {
	suite.repo.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func TestNumberFormatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NumberFormatServiceTestSuite))
}

func (suite *NumberFormatServiceTestSuite) TestGet_CacheHit() {
	cached := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	suite.cache.On("GetNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(cached, nil)

	format, err := suite.service.Get(suite.context, suite.tenantID, models.DocumentKindInvoice)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), cached, format)
	suite.repo.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NumberFormatServiceTestSuite) TestGet_CreatesDefaultOnFirstAccess() {
	created := numbering.DefaultFormat(suite.tenantID, models.DocumentKindQuotation)

	suite.cache.On("GetNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindQuotation).Return(nil, nil)
	suite.repo.On("Get", mock.Anything, suite.tenantID, models.DocumentKindQuotation).
		Return(nil, ierr.NewError("missing").Mark(ierr.ErrNotFound)).Once()
	suite.repo.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(f *models.NumberFormat) bool {
		return f.Prefix == "QUO" && f.PaddingDigits == 3 && f.IncludeYear && f.BusinessProfileID == suite.tenantID
	})).Return(nil)
	suite.repo.On("Get", mock.Anything, suite.tenantID, models.DocumentKindQuotation).Return(created, nil).Once()
	suite.cache.On("SetNumberFormat", mock.Anything, created, time.Hour).Return(nil)

	format, err := suite.service.Get(suite.context, suite.tenantID, models.DocumentKindQuotation)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "QUO", format.Prefix)
}

func (suite *NumberFormatServiceTestSuite) TestGet_UnknownKind() {
	_, err := suite.service.Get(suite.context, suite.tenantID, models.DocumentKind("receipt"))
	assert.True(suite.T(), ierr.IsValidation(err))
}

func (suite *NumberFormatServiceTestSuite) TestCreate_ExistingFormatIsConflict() {
	format := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	suite.repo.On("Create", mock.Anything, format).
		Return(ierr.NewError("dup").WithHint("number format with this kind already exists").Mark(ierr.ErrAlreadyExists))

	_, err := suite.service.Create(suite.context, format)

	assert.True(suite.T(), ierr.IsAlreadyExists(err))
}

func (suite *NumberFormatServiceTestSuite) TestCreate_NormalizesNonCustomFormat() {
	format := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	format.IncludeYear = false
	format.FiscalYearFormat = ""

	suite.repo.On("Create", mock.Anything, mock.MatchedBy(func(f *models.NumberFormat) bool {
		return f.IncludeYear && f.FiscalYearFormat == numbering.DefaultFiscalYearFormat
	})).Return(nil)
	suite.repo.On("Get", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(format, nil)
	suite.cache.On("DeleteNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(nil)

	created, err := suite.service.Create(suite.context, format)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), created.IncludeYear)
}

func (suite *NumberFormatServiceTestSuite) TestCreate_InvalidPadding() {
	format := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	format.PaddingDigits = 0

	_, err := suite.service.Create(suite.context, format)

	assert.True(suite.T(), ierr.IsValidation(err))
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *NumberFormatServiceTestSuite) TestUpdate_NonCustomAlwaysIncludesYear() {
	existing := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	existing.IsCustomFormat = true
	existing.IncludeYear = false

	suite.cache.On("GetNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(existing, nil)
	suite.repo.On("Update", mock.Anything, mock.MatchedBy(func(f *models.NumberFormat) bool {
		return !f.IsCustomFormat && f.IncludeYear
	})).Return(nil)
	suite.repo.On("Get", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(&models.NumberFormat{
		BusinessProfileID: suite.tenantID, Kind: models.DocumentKindInvoice, Prefix: "INV", IncludeYear: true,
	}, nil)
	suite.cache.On("DeleteNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(nil)

	updated, err := suite.service.Update(suite.context, suite.tenantID, models.DocumentKindInvoice, models.NumberFormatPatch{
		IsCustomFormat: lo.ToPtr(false),
		IncludeYear:    lo.ToPtr(false),
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), updated.IncludeYear)
}

func (suite *NumberFormatServiceTestSuite) TestUpdate_RejectsZeroStart() {
	existing := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	suite.cache.On("GetNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(existing, nil)

	_, err := suite.service.Update(suite.context, suite.tenantID, models.DocumentKindInvoice, models.NumberFormatPatch{
		StartNumber: lo.ToPtr(int64(0)),
	})

	assert.True(suite.T(), ierr.IsValidation(err))
	suite.repo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *NumberFormatServiceTestSuite) TestGet_CacheErrorFallsBackToRepository() {
	stored := numbering.DefaultFormat(suite.tenantID, models.DocumentKindInvoice)
	suite.cache.On("GetNumberFormat", mock.Anything, suite.tenantID, models.DocumentKindInvoice).
		Return(nil, assert.AnError)
	suite.repo.On("Get", mock.Anything, suite.tenantID, models.DocumentKindInvoice).Return(stored, nil)
	suite.cache.On("SetNumberFormat", mock.Anything, stored, time.Hour).Return(assert.AnError)

	format, err := suite.service.Get(suite.context, suite.tenantID, models.DocumentKindInvoice)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stored, format)
}
