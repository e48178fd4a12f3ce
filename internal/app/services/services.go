package services

import (
	"helperland/internal/app/deps"
	drl "helperland/internal/core/domain/rate_limiter"
	"helperland/internal/core/services"
	"helperland/internal/core/services/auth"
	changepassword "helperland/internal/core/services/change_password"
	createaddress "helperland/internal/core/services/create_address"
	deleteaddress "helperland/internal/core/services/delete_address"
	getaddressbyid "helperland/internal/core/services/get_address_by_id"
	getprofile "helperland/internal/core/services/get_profile"
	getuserbysessiontoken "helperland/internal/core/services/get_user_by_session_token"
	getusers "helperland/internal/core/services/get_users"
	listuseraddresses "helperland/internal/core/services/list_user_addresses"
	login "helperland/internal/core/services/log_in"
	ratelimiting "helperland/internal/core/services/rate_limiting"
	resetpassword "helperland/internal/core/services/reset_password"
	sendpasswordresettoken "helperland/internal/core/services/send_password_reset_token"
	signup "helperland/internal/core/services/sign_up"
	updateaddress "helperland/internal/core/services/update_address"
	updateprofile "helperland/internal/core/services/update_profile"
	validatepasswordresettoken "helperland/internal/core/services/validate_password_reset_token"
	"time"
)

type Services struct {
	LogIn                      services.Service[login.Input, login.Result]
	SignUp                     services.Service[signup.Input, signup.Result]
	SendPasswordResetToken     services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ValidatePasswordResetToken services.Service[validatepasswordresettoken.Input, validatepasswordresettoken.Result]
	ResetPassword              services.Service[resetpassword.Input, resetpassword.Result]
	GetUserBySessionToken      services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]

	ChangePassword services.Service[changepassword.Input, changepassword.Result]
	GetUsers       services.Service[getusers.Input, getusers.Result]
	GetProfile     services.Service[getprofile.Input, getprofile.Result]
	UpdateProfile  services.Service[updateprofile.Input, updateprofile.Result]

	CreateAddress     services.Service[createaddress.Input, createaddress.Result]
	UpdateAddress     services.Service[updateaddress.Input, updateaddress.Result]
	ListUserAddresses services.Service[listuseraddresses.Input, listuseraddresses.Result]
	GetAddressByID    services.Service[getaddressbyid.Input, getaddressbyid.Result]
	DeleteAddress     services.Service[deleteaddress.Input, deleteaddress.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	passwordResetValidDuration := time.Duration(deps.Config.PasswordResetValidDurationHours) * time.Hour

	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.SessionTokenIssuer,
		),
	)
	s.SignUp = signup.NewWithWelcomeEmailSending(
		deps.Logger,
		deps.WelcomeEmailSender,
		signup.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.PasswordHasher,
			deps.SessionTokenIssuer,
			deps.Now,
		),
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.UnitOfWork,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetTokenSender,
			passwordResetValidDuration,
			deps.Now,
		),
	)
	s.ValidatePasswordResetToken = validatepasswordresettoken.New(
		deps.Logger,
		deps.PasswordResetRepository,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionTokenIssuer,
		deps.UserRepository,
	)

	s.ChangePassword = auth.WithAuthentication(
		s.GetUserBySessionToken,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)
	s.GetUsers = auth.WithAuthentication(
		s.GetUserBySessionToken,
		getusers.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.GetProfile = auth.WithAuthentication(
		s.GetUserBySessionToken,
		getprofile.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.UpdateProfile = auth.WithAuthentication(
		s.GetUserBySessionToken,
		updateprofile.New(
			deps.Logger,
			deps.UserRepository,
		),
	)

	s.CreateAddress = auth.WithAuthentication(
		s.GetUserBySessionToken,
		createaddress.New(
			deps.Logger,
			deps.AddressRepository,
		),
	)
	s.UpdateAddress = auth.WithAuthentication(
		s.GetUserBySessionToken,
		updateaddress.New(
			deps.Logger,
			deps.AddressRepository,
		),
	)
	s.ListUserAddresses = auth.WithAuthentication(
		s.GetUserBySessionToken,
		listuseraddresses.New(
			deps.Logger,
			deps.AddressRepository,
		),
	)
	s.GetAddressByID = auth.WithAuthentication(
		s.GetUserBySessionToken,
		getaddressbyid.New(
			deps.Logger,
			deps.AddressRepository,
		),
	)
	s.DeleteAddress = auth.WithAuthentication(
		s.GetUserBySessionToken,
		deleteaddress.New(
			deps.Logger,
			deps.AddressRepository,
		),
	)

	return s
}
