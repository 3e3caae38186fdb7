package repositories

import (
	"context"
	"time"

	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// repoSuite wires a pgxmock pool behind database.DB for every repository suite
type repoSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	db       *database.DB
	tenantID uuid.UUID
	context  context.Context
}

func (suite *repoSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock
	suite.db = database.New(mock, logger.NewNopLogger(), time.Second)
	suite.tenantID = uuid.New()
	suite.context = context.Background()
}

func (suite *repoSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func stringPtr(s string) *string {
	return &s
}

// anyArgs matches n positional arguments of any value
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
