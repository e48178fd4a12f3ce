package getaddressbyid

import (
	"errors"
	"net/http"
	"strconv"

	"helperland/internal/core/domain/address"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	service "helperland/internal/core/services/get_address_by_id"
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
	Address response.Address `json:"address"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid address ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{ID: address.ID(addressID)})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidSessionToken):
			response.RenderUnauthorized(rw)
		case errors.Is(err, address.ErrInvalidAddressID):
			response.RenderError(rw, "invalid address ID", http.StatusBadRequest)
		case errors.Is(err, address.ErrAddressDoesNotExist):
			response.RenderError(rw, "address does not exist", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	a := response.Address{}
	a.FromDomainAddress(result.Address)
	response.Render(rw, Result{Address: a}, http.StatusOK)
}
