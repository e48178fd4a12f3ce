package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	login "helperland/internal/core/services/log_in"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL    = "test@test.test"
	PASSWORD = "test-password"
)

type testSuite struct {
	suite.Suite
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Handler        *Handler
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Handler = New(login.New(
		logging.NewFakeLogger(),
		suite.UserRepository,
		suite.PasswordHasher,
		user.NewFakeSessionTokenIssuer(),
	))
}

func TestLogInHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	s.createUser()
	rw := httptest.NewRecorder()
	body := `{"email": "test@test.test", "password": "test-password"}`

	s.Handler.ServeHTTP(rw, s.request(body))

	s.Equal(http.StatusOK, rw.Code)
	s.Contains(rw.Body.String(), `"token"`)
	s.NotContains(rw.Body.String(), "password")
}

func (s *testSuite) TestInvalidCredentialsReturnNotFound() {
	s.createUser()
	rw := httptest.NewRecorder()
	body := `{"email": "test@test.test", "password": "wrong-password"}`

	s.Handler.ServeHTTP(rw, s.request(body))

	s.Equal(http.StatusNotFound, rw.Code)
}

func (s *testSuite) TestUnknownEmailReturnsSameStatus() {
	rw := httptest.NewRecorder()
	body := `{"email": "unknown@test.test", "password": "test-password"}`

	s.Handler.ServeHTTP(rw, s.request(body))

	s.Equal(http.StatusNotFound, rw.Code)
}

func (s *testSuite) TestMalformedBody() {
	rw := httptest.NewRecorder()

	s.Handler.ServeHTTP(rw, s.request("{not json"))

	s.Equal(http.StatusBadRequest, rw.Code)
}

func (s *testSuite) TestInvalidEmail() {
	rw := httptest.NewRecorder()
	body := `{"email": "not-an-email", "password": "test-password"}`

	s.Handler.ServeHTTP(rw, s.request(body))

	s.Equal(http.StatusBadRequest, rw.Code)
}

func (s *testSuite) request(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/Login", strings.NewReader(body))
}

func (s *testSuite) createUser() user.User {
	s.T().Helper()
	passwordHash, err := s.PasswordHasher.HashPassword(user.RawPassword(PASSWORD))
	if err != nil {
		s.FailNow(err.Error())
	}
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(EMAIL),
			PasswordHash: passwordHash,
			Role:         user.RoleCustomer,
			CreatedAt:    time.Now().UTC(),
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
