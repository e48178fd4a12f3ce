package getuserbysessiontoken

import (
	"context"
	"testing"
	"time"

	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	UserRepository *user.FakeUserRepository
	TokenIssuer    *user.FakeSessionTokenIssuer
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenIssuer = user.NewFakeSessionTokenIssuer()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.TokenIssuer,
		suite.UserRepository,
	)
}

func TestGetUserBySessionTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()
	token := s.issueToken(u)

	result, err := s.Service.Run(context.Background(), Input{Token: token})

	s.Nil(err)
	s.Equal(u, result.User)
}

func (s *testSuite) TestGarbageTokenIsInvalid() {
	s.createUser()

	_, err := s.Service.Run(context.Background(), Input{Token: "garbage"})

	s.ErrorIs(err, user.ErrInvalidSessionToken)
}

func (s *testSuite) TestVerificationFailureIsInvalid() {
	u := s.createUser()
	token := s.issueToken(u)
	s.TokenIssuer.VerifyError = user.ErrInvalidSessionToken

	_, err := s.Service.Run(context.Background(), Input{Token: token})

	s.ErrorIs(err, user.ErrInvalidSessionToken)
}

func (s *testSuite) TestTokenForMissingAccountIsInvalid() {
	u := s.createUser()
	missing := u
	missing.ID = u.ID + 100

	_, err := s.Service.Run(context.Background(), Input{Token: s.issueToken(missing)})

	s.ErrorIs(err, user.ErrInvalidSessionToken)
}

func (s *testSuite) TestStorageFailurePropagates() {
	u := s.createUser()
	token := s.issueToken(u)
	s.UserRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Token: token})

	s.NotNil(err)
	s.NotErrorIs(err, user.ErrInvalidSessionToken)
}

func (s *testSuite) issueToken(u user.User) user.SessionToken {
	token, err := s.TokenIssuer.Issue(u)
	if err != nil {
		s.FailNow(err.Error())
	}
	return token
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail("test@test.test"),
			PasswordHash: user.PasswordHash("test-password-hash"),
			Role:         user.RoleCustomer,
			CreatedAt:    time.Now().UTC(),
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
