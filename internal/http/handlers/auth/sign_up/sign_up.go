package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	signup "helperland/internal/core/services/sign_up"
	"helperland/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(
	service services.Service[signup.Input, signup.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Mobile    *string `json:"mobile"`
}

type Result struct {
	User  response.User `json:"user"`
	Token *string       `json:"token,omitempty"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		// Self-registration only covers the two public roles.
		validation.Field(
			&i.Role,
			validation.Required,
			validation.In(string(user.RoleCustomer), string(user.RoleProvider)),
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

	role, _ := user.NewRole(input.Role)
	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Email:     c.NewEmail(input.Email),
			Password:  user.RawPassword(input.Password),
			Role:      role,
			FirstName: optionalFromPtr(input.FirstName),
			LastName:  optionalFromPtr(input.LastName),
			Mobile:    optionalFromPtr(input.Mobile),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	res := Result{User: u}
	if result.Token.IsPresent {
		token := string(result.Token.Value)
		res.Token = &token
	}
	response.Render(rw, res, http.StatusOK)
}

func optionalFromPtr(v *string) c.Optional[string] {
	if v == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*v, true)
}
