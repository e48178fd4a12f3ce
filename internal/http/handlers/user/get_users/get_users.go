package getusers

import (
	"errors"
	"net/http"

	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	service "helperland/internal/core/services/get_users"
	"helperland/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Users []response.User `json:"users"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if errors.Is(err, user.ErrInvalidSessionToken) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	users := make([]response.User, 0, len(result.Users))
	for _, du := range result.Users {
		u := response.User{}
		u.FromDomainUser(du)
		users = append(users, u)
	}
	response.Render(rw, Result{Users: users}, http.StatusOK)
}
