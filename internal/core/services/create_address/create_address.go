package createaddress

import (
	"context"
	"helperland/internal/core/domain/address"
	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"helperland/internal/core/services/auth"
)

type Input struct {
	Line1      string
	Line2      c.Optional[string]
	City       string
	State      string
	PostalCode string
	Mobile     c.Optional[string]
	Type       address.Type
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
	a, err := s.addressRepository.Create(ctx, address.CreateAddressInput{
		UserID:     input.User.ID,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Mobile:     input.Mobile,
		Type:       input.Type,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create address.",
			logging.Entry("userId", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Address has been created.",
		logging.Entry("userId", input.User.ID),
		logging.Entry("addressId", a.ID),
	)
	return Result{Address: a}, nil
}
