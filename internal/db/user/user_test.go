package user

import (
	"context"
	"errors"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
	"helperland/internal/db"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	if os.Getenv("TEST_POSTGRESQL_URL") == "" {
		t.Skip("TEST_POSTGRESQL_URL is not set.")
	}
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	input := user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Role:         user.RoleCustomer,
		FirstName:    c.NewOptional("John", true),
		CreatedAt:    NOW,
	}

	u, err := suite.repo.Create(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(input.Email, u.Email)
	assert.Equal(input.PasswordHash, u.PasswordHash)
	assert.Equal(input.Role, u.Role)
	assert.Equal(input.FirstName, u.FirstName)
	assert.False(u.LastName.IsPresent)
	assert.Equal(NOW, u.CreatedAt.UTC())
}

func (suite *testSuite) TestCreateDuplicateEmail() {
	suite.createUser(EMAIL)

	_, err := suite.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(EMAIL),
			PasswordHash: user.PasswordHash("another-hash"),
			Role:         user.RoleProvider,
			CreatedAt:    NOW,
		},
	)

	suite.Require().True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createUser(EMAIL)

	u, err := suite.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)

	_, err = suite.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.test"))
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSetPassword() {
	created := suite.createUser(EMAIL)

	err := suite.repo.SetPassword(context.Background(), created.ID, user.PasswordHash("new-hash"))

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)

	err = suite.repo.SetPassword(context.Background(), user.ID(999999), user.PasswordHash("new-hash"))
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) createUser(email string) user.User {
	suite.T().Helper()
	u, err := suite.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(email),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			Role:         user.RoleCustomer,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		suite.FailNow(err.Error())
	}
	return u
}
