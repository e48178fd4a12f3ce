package createaddress

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"helperland/internal/core/domain/address"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	service "helperland/internal/core/services/create_address"
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
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Mobile     *string `json:"mobile"`
	Type       string  `json:"type"`
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
		validation.Field(&i.Line1, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Line2, validation.Length(0, 512)),
		validation.Field(&i.City, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.State, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.PostalCode, validation.Required, validation.Length(0, 32)),
		validation.Field(&i.Mobile, validation.Length(0, 32)),
		validation.Field(
			&i.Type,
			validation.Required,
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

	addressType, _ := address.NewType(input.Type)
	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Line1:      input.Line1,
			Line2:      optionalFromPtr(input.Line2),
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
			Mobile:     optionalFromPtr(input.Mobile),
			Type:       addressType,
		},
	)
	if errors.Is(err, user.ErrInvalidSessionToken) {
		response.RenderUnauthorized(rw)
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
