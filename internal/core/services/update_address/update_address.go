package updateaddress

import (
	"context"
	"errors"
	"helperland/internal/core/domain/address"
	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"helperland/internal/core/services/auth"
)

type Input struct {
	ID         address.ID
	Line1      c.Optional[string]
	Line2      c.Optional[string]
	City       c.Optional[string]
	State      c.Optional[string]
	PostalCode c.Optional[string]
	Mobile     c.Optional[string]
	Type       c.Optional[address.Type]
	User       user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Address address.Address
}

type service struct {
	log               logging.Logger
	addressRepository address.Repository
}

func New(
	log logging.Logger,
	addressRepository address.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if addressRepository == nil {
		panic(e.NewNilArgumentError("addressRepository"))
	}
	return &service{log: log, addressRepository: addressRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.ID == 0 {
		return result, address.ErrInvalidAddressID
	}
	a, err := s.addressRepository.Update(ctx, address.UpdateAddressInput{
		ID:         input.ID,
		UserID:     input.User.ID,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Mobile:     input.Mobile,
		Type:       input.Type,
	})
	if errors.Is(err, address.ErrAddressDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update address.",
			logging.Entry("addressId", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Address: a}, nil
}
