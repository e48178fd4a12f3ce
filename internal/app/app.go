package app

import (
	"fmt"
	"net/http"

	"helperland/internal/app/deps"
	"helperland/internal/app/services"
	"helperland/internal/http/handlers/auth"

	login "helperland/internal/http/handlers/auth/log_in"
	resetpassword "helperland/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "helperland/internal/http/handlers/auth/send_password_reset_token"
	signup "helperland/internal/http/handlers/auth/sign_up"
	validatepasswordresettoken "helperland/internal/http/handlers/auth/validate_password_reset_token"

	changepassword "helperland/internal/http/handlers/user/change_password"
	getprofile "helperland/internal/http/handlers/user/get_profile"
	getusers "helperland/internal/http/handlers/user/get_users"
	updateprofile "helperland/internal/http/handlers/user/update_profile"

	createaddress "helperland/internal/http/handlers/address/create_address"
	deleteaddress "helperland/internal/http/handlers/address/delete_address"
	getaddressbyid "helperland/internal/http/handlers/address/get_address_by_id"
	listuseraddresses "helperland/internal/http/handlers/address/list_user_addresses"
	updateaddress "helperland/internal/http/handlers/address/update_address"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	api := chi.NewRouter()
	api.Method(http.MethodPost, "/Login", login.New(s.LogIn))
	api.Method(http.MethodPost, "/Signup", signup.New(s.SignUp))
	api.Method(http.MethodPost, "/ForgotPass", sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode))
	api.Method(http.MethodPost, "/ResetPassLink", validatepasswordresettoken.New(s.ValidatePasswordResetToken))
	api.Method(http.MethodPost, "/ResetPass", resetpassword.New(s.ResetPassword))

	api.Group(func(r chi.Router) {
		r.Use(auth.SetAuthTokenToContext)
		r.Method(http.MethodGet, "/GetUsers", getusers.New(s.GetUsers))
		r.Method(http.MethodGet, "/GetProfile", getprofile.New(s.GetProfile))
		r.Method(http.MethodPut, "/UpdateProfile", updateprofile.New(s.UpdateProfile))
		r.Method(http.MethodPut, "/UpdatePassword", changepassword.New(s.ChangePassword))
		r.Method(http.MethodPost, "/CreateAddress", createaddress.New(s.CreateAddress))
		r.Method(http.MethodPut, "/UpdateAddress", updateaddress.New(s.UpdateAddress))
		r.Method(http.MethodGet, "/GetAddressByUser", listuseraddresses.New(s.ListUserAddresses))
		r.Method(http.MethodGet, "/GetAddressById", getaddressbyid.New(s.GetAddressByID))
		r.Method(http.MethodDelete, "/DeleteAddress", deleteaddress.New(s.DeleteAddress))
	})

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api/Helperland", api)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
