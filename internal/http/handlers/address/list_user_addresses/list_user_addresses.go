package listuseraddresses

import (
	"errors"
	"net/http"

	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	service "helperland/internal/core/services/list_user_addresses"
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
	Addresses []response.Address `json:"addresses"`
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

	addresses := make([]response.Address, 0, len(result.Addresses))
	for _, da := range result.Addresses {
		a := response.Address{}
		a.FromDomainAddress(da)
		addresses = append(addresses, a)
	}
	response.Render(rw, Result{Addresses: addresses}, http.StatusOK)
}
