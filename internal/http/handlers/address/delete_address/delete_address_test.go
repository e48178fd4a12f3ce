package deleteaddress

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"helperland/internal/core/domain/address"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	authservice "helperland/internal/core/services/auth"
	service "helperland/internal/core/services/delete_address"
	getuserbysessiontoken "helperland/internal/core/services/get_user_by_session_token"
	"helperland/internal/http/handlers/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	UserRepository    *user.FakeUserRepository
	AddressRepository *address.FakeRepository
	TokenIssuer       *user.FakeSessionTokenIssuer
	Router            chi.Router
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.AddressRepository = address.NewFakeRepository()
	suite.TokenIssuer = user.NewFakeSessionTokenIssuer()
	deleteService := authservice.WithAuthentication(
		getuserbysessiontoken.New(
			logging.NewFakeLogger(),
			suite.TokenIssuer,
			suite.UserRepository,
		),
		service.New(logging.NewFakeLogger(), suite.AddressRepository),
	)
	suite.Router = chi.NewRouter()
	suite.Router.Use(auth.SetAuthTokenToContext)
	suite.Router.Method(http.MethodDelete, "/DeleteAddress", New(deleteService))
}

func TestDeleteAddressHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u := s.createUser()
	a := s.createAddress(u.ID)
	rw := httptest.NewRecorder()

	s.Router.ServeHTTP(rw, s.request("/DeleteAddress?id=1", u, true))

	s.Equal(http.StatusNoContent, rw.Code)
	_, err := s.AddressRepository.GetByID(context.Background(), u.ID, a.ID)
	s.ErrorIs(err, address.ErrAddressDoesNotExist)
}

func (s *testSuite) TestZeroIDReturnsBadRequest() {
	u := s.createUser()
	rw := httptest.NewRecorder()

	s.Router.ServeHTTP(rw, s.request("/DeleteAddress?id=0", u, true))

	s.Equal(http.StatusBadRequest, rw.Code)
}

func (s *testSuite) TestMissingIDReturnsBadRequest() {
	u := s.createUser()
	rw := httptest.NewRecorder()

	s.Router.ServeHTTP(rw, s.request("/DeleteAddress", u, true))

	s.Equal(http.StatusBadRequest, rw.Code)
}

func (s *testSuite) TestUnknownIDReturnsNotFound() {
	u := s.createUser()
	rw := httptest.NewRecorder()

	s.Router.ServeHTTP(rw, s.request("/DeleteAddress?id=42", u, true))

	s.Equal(http.StatusNotFound, rw.Code)
}

func (s *testSuite) TestMissingTokenReturnsUnauthorized() {
	u := s.createUser()
	s.createAddress(u.ID)
	rw := httptest.NewRecorder()

	s.Router.ServeHTTP(rw, s.request("/DeleteAddress?id=1", u, false))

	s.Equal(http.StatusUnauthorized, rw.Code)
}

func (s *testSuite) TestStorageFailureReturnsInternalError() {
	u := s.createUser()
	s.createAddress(u.ID)
	s.UserRepository.ReturnError = true
	rw := httptest.NewRecorder()

	s.Router.ServeHTTP(rw, s.request("/DeleteAddress?id=1", u, true))

	s.Equal(http.StatusInternalServerError, rw.Code)
}

func (s *testSuite) request(target string, u user.User, withToken bool) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, target, nil)
	if withToken {
		token, err := s.TokenIssuer.Issue(u)
		if err != nil {
			s.FailNow(err.Error())
		}
		r.Header.Set("authorization", "Bearer "+string(token))
	}
	return r
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

func (s *testSuite) createAddress(userID user.ID) address.Address {
	s.T().Helper()
	a, err := s.AddressRepository.Create(
		context.Background(),
		address.CreateAddressInput{
			UserID:     userID,
			Line1:      "221B Baker Street",
			City:       "London",
			State:      "LDN",
			PostalCode: "NW16XE",
			Type:       address.TypeService,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return a
}
