package signup

import (
	"context"
	"errors"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/logging"
	uow "helperland/internal/core/domain/unit_of_work"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL    = "test@test.test"
	PASSWORD = "test-password"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger             *logging.FakeLogger
	UnitOfWork         *uow.FakeUnitOfWork
	PasswordHasher     *user.FakePasswordHasher
	SessionTokenIssuer *user.FakeSessionTokenIssuer
	Service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.SessionTokenIssuer = user.NewFakeSessionTokenIssuer()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.SessionTokenIssuer,
		func() time.Time { return NOW },
	)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(
		context.Background(),
		Input{
			Email:    c.NewEmail(EMAIL),
			Password: user.RawPassword(PASSWORD),
			Role:     user.RoleCustomer,
		},
	)

	s.Nil(err)
	s.Equal(c.NewEmail(EMAIL), result.User.Email)
	s.True(s.UnitOfWork.Context.WasCommitCalled)

	createdUser, err := s.UnitOfWork.Users().GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(err)
	s.NotEqual(user.PasswordHash(PASSWORD), createdUser.PasswordHash)
}

func (s *testSuite) TestDuplicateEmailReturnsConflictWithoutMutation() {
	_, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD), Role: user.RoleCustomer},
	)
	s.Nil(err)
	before, err := s.UnitOfWork.Users().GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword("other-password"), Role: user.RoleProvider},
	)

	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
	after, getErr := s.UnitOfWork.Users().GetByEmail(context.Background(), c.NewEmail(EMAIL))
	s.Nil(getErr)
	s.Equal(before, after)
}

func (s *testSuite) TestProviderGetsSessionTokenAtSignUp() {
	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD), Role: user.RoleProvider},
	)

	s.Nil(err)
	s.True(result.Token.IsPresent)
	s.NotEqual(user.SessionToken(""), result.Token.Value)
}

func (s *testSuite) TestCustomerGetsNoSessionTokenAtSignUp() {
	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD), Role: user.RoleCustomer},
	)

	s.Nil(err)
	s.False(result.Token.IsPresent)
}

func (s *testSuite) TestAdminGetsNoSessionTokenAtSignUp() {
	result, err := s.Service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD), Role: user.RoleAdmin},
	)

	s.Nil(err)
	s.False(result.Token.IsPresent)
}

func (s *testSuite) TestWelcomeEmailDecoratorSendsOnSuccess() {
	sender := user.NewFakeWelcomeEmailSender()
	service := NewWithWelcomeEmailSending(s.Logger, sender, s.Service)

	_, err := service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD), Role: user.RoleCustomer},
	)

	s.Nil(err)
	s.Len(sender.SentTo, 1)
}

func (s *testSuite) TestWelcomeEmailFailureDoesNotFailSignUp() {
	sender := user.NewFakeWelcomeEmailSender()
	sender.ReturnError = true
	service := NewWithWelcomeEmailSending(s.Logger, sender, s.Service)

	_, err := service.Run(
		context.Background(),
		Input{Email: c.NewEmail(EMAIL), Password: user.RawPassword(PASSWORD), Role: user.RoleCustomer},
	)

	s.Nil(err)
}
