package changepassword

import (
	"context"
	"errors"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL            = "test@test.test"
	CURRENT_PASSWORD = "current-password"
	NEW_PASSWORD     = "new-password"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
	)
}

func TestChangePasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()

	_, err := s.Service.Run(
		context.Background(),
		Input{
			CurrentPassword: user.RawPassword(CURRENT_PASSWORD),
			NewPassword:     user.RawPassword(NEW_PASSWORD),
			User:            u,
		},
	)

	s.Nil(err)
	updated, getErr := s.UserRepository.GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.True(s.PasswordHasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), updated.PasswordHash))
}

func (s *testSuite) TestWrongCurrentPasswordRejected() {
	u := s.createUser()

	_, err := s.Service.Run(
		context.Background(),
		Input{
			CurrentPassword: user.RawPassword("wrong-password"),
			NewPassword:     user.RawPassword(NEW_PASSWORD),
			User:            u,
		},
	)

	s.True(errors.Is(err, user.ErrInvalidCredentials))
	updated, getErr := s.UserRepository.GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.Equal(u.PasswordHash, updated.PasswordHash)
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	passwordHash, err := s.PasswordHasher.HashPassword(user.RawPassword(CURRENT_PASSWORD))
	if err != nil {
		s.FailNow(err.Error())
	}
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(EMAIL),
			PasswordHash: passwordHash,
			Role:         user.RoleCustomer,
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
