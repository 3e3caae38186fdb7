package database

import (
	"context"
	"errors"
	"testing"
	"time"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/logger"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TxTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	db   *DB
	ctx  context.Context
}

func (suite *TxTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.db = New(mock, logger.NewNopLogger(), time.Second)
	suite.ctx = context.Background()
}

func (suite *TxTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func TestTxTestSuite(t *testing.T) {
	suite.Run(t, new(TxTestSuite))
}

func (suite *TxTestSuite) TestWithTx_CommitsOnSuccess() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE document_counters`).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	err := suite.db.WithTx(suite.ctx, func(ctx context.Context) error {
		assert.True(suite.T(), InTx(ctx))
		_, err := suite.db.Querier(ctx).Exec(ctx, `UPDATE document_counters SET last_number = $1`, int64(2))
		return err
	})
	assert.NoError(suite.T(), err)
}

func (suite *TxTestSuite) TestWithTx_RollsBackOnError() {
	failure := errors.New("line item failed")

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`UPDATE document_counters`).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectRollback()

	err := suite.db.WithTx(suite.ctx, func(ctx context.Context) error {
		if _, err := suite.db.Querier(ctx).Exec(ctx, `UPDATE document_counters SET last_number = last_number + 1`); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(suite.T(), err, failure)
}

func (suite *TxTestSuite) TestWithTx_NestedCallJoinsOuterTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectCommit()

	calls := 0
	err := suite.db.WithTx(suite.ctx, func(ctx context.Context) error {
		calls++
		return suite.db.WithTx(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, calls)
}

func (suite *TxTestSuite) TestWithTx_RollsBackAndRepanics() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectRollback()

	assert.Panics(suite.T(), func() {
		_ = suite.db.WithTx(suite.ctx, func(ctx context.Context) error {
			panic("boom")
		})
	})
}

func (suite *TxTestSuite) TestWithTx_BeginFailureIsDatabaseError() {
	suite.mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := suite.db.WithTx(suite.ctx, func(ctx context.Context) error {
		suite.T().Fatal("fn must not run")
		return nil
	})
	assert.True(suite.T(), ierr.Is(err, ierr.ErrDatabase))
}

func (suite *TxTestSuite) TestWithTx_CommitFailureIsDatabaseError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := suite.db.WithTx(suite.ctx, func(ctx context.Context) error { return nil })
	assert.True(suite.T(), ierr.Is(err, ierr.ErrDatabase))
}

func (suite *TxTestSuite) TestQuerier_OutsideTransactionUsesPool() {
	assert.False(suite.T(), InTx(suite.ctx))
	assert.Equal(suite.T(), suite.mock, suite.db.Querier(suite.ctx))
}
