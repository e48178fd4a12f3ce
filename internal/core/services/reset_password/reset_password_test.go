package resetpassword

import (
	"context"
	"errors"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/logging"
	uow "helperland/internal/core/domain/unit_of_work"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = "test@test.test"
	TOKEN        = "test-reset-token"
	NEW_PASSWORD = "new-password"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()
	s.createToken(u.ID, NOW.Add(time.Hour))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.PasswordResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.Nil(err)
	updated, getErr := s.UnitOfWork.Users().GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.True(s.PasswordHasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), updated.PasswordHash))
}

func (s *testSuite) TestTokenIsConsumedBySuccessfulReset() {
	u := s.createUser()
	s.createToken(u.ID, NOW.Add(time.Hour))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.PasswordResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)
	s.Nil(err)

	_, err = s.Service.Run(
		context.Background(),
		Input{Token: user.PasswordResetToken(TOKEN), NewPassword: user.RawPassword("another-password")},
	)
	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))

	updated, getErr := s.UnitOfWork.Users().GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.True(s.PasswordHasher.ValidatePassword(user.RawPassword(NEW_PASSWORD), updated.PasswordHash))
}

func (s *testSuite) TestExpiredTokenMakesNoMutation() {
	u := s.createUser()
	s.createToken(u.ID, NOW.Add(-time.Minute))

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.PasswordResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
	updated, getErr := s.UnitOfWork.Users().GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.Equal(u.PasswordHash, updated.PasswordHash)
}

func (s *testSuite) TestUnknownTokenMakesNoMutation() {
	u := s.createUser()

	_, err := s.Service.Run(
		context.Background(),
		Input{Token: user.PasswordResetToken("unknown"), NewPassword: user.RawPassword(NEW_PASSWORD)},
	)

	s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
	updated, getErr := s.UnitOfWork.Users().GetByID(context.Background(), u.ID)
	s.Nil(getErr)
	s.Equal(u.PasswordHash, updated.PasswordHash)
}

func (s *testSuite) TestConcurrentResetsConsumeTokenExactlyOnce() {
	u := s.createUser()
	s.createToken(u.ID, NOW.Add(time.Hour))

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		i := i
		go func() {
			defer wg.Done()
			_, errs[i] = s.Service.Run(
				context.Background(),
				Input{Token: user.PasswordResetToken(TOKEN), NewPassword: user.RawPassword(NEW_PASSWORD)},
			)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			s.True(errors.Is(err, user.ErrInvalidPasswordResetToken))
		}
	}
	s.Equal(1, succeeded)
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	passwordHash, err := s.PasswordHasher.HashPassword(user.RawPassword("old-password"))
	if err != nil {
		s.FailNow(err.Error())
	}
	u, err := s.UnitOfWork.Users().Create(
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

func (s *testSuite) createToken(userID user.ID, expiresAt time.Time) {
	s.T().Helper()
	_, err := s.UnitOfWork.PasswordResets().Create(
		context.Background(),
		user.CreatePasswordResetInput{
			Token:     user.PasswordResetToken(TOKEN),
			UserID:    userID,
			IssuedAt:  NOW,
			ExpiresAt: expiresAt,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
}
