package updateaddress

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"helperland/internal/core/domain/address"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	service "helperland/internal/core/services/update_address"
	"helperland/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	ID         int64   `json:"id"`
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Mobile     *string `json:"mobile"`
	Type       *string `json:"type"`
}

type Result struct {
	Address response.Address `json:"address"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Line1, validation.Length(0, 512)),
		validation.Field(&i.Line2, validation.Length(0, 512)),
		validation.Field(&i.City, validation.Length(0, 256)),
		validation.Field(&i.State, validation.Length(0, 256)),
		validation.Field(&i.PostalCode, validation.Length(0, 32)),
		validation.Field(&i.Mobile, validation.Length(0, 32)),
		validation.Field(
			&i.Type,
			validation.In(string(address.TypeBilling), string(address.TypeService)),
		),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			ID:         address.ID(input.ID),
			Line1:      optionalFromPtr(input.Line1),
			Line2:      optionalFromPtr(input.Line2),
			City:       optionalFromPtr(input.City),
			State:      optionalFromPtr(input.State),
			PostalCode: optionalFromPtr(input.PostalCode),
			Mobile:     optionalFromPtr(input.Mobile),
			Type:       optionalTypeFromPtr(input.Type),
		},
	)
	if errors.Is(err, user.ErrInvalidSessionToken) {
		response.RenderUnauthorized(rw)
		return
	}
	if errors.Is(err, address.ErrInvalidAddressID) {
		response.RenderError(rw, "invalid address ID", http.StatusBadRequest)
		return
	}
	if errors.Is(err, address.ErrAddressDoesNotExist) {
		response.RenderError(rw, "address does not exist", http.StatusNotFound)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	a := response.Address{}
	a.FromDomainAddress(result.Address)
	response.Render(rw, Result{Address: a}, http.StatusOK)
}

func optionalFromPtr(v *string) c.Optional[string] {
	if v == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*v, true)
}

func optionalTypeFromPtr(v *string) c.Optional[address.Type] {
	if v == nil {
		return c.Optional[address.Type]{}
	}
	return c.NewOptional(address.Type(*v), true)
}
