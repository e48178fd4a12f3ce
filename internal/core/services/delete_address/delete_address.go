package deleteaddress

import (
	"context"
	"errors"
	"helperland/internal/core/domain/address"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"helperland/internal/core/services/auth"
)

type Input struct {
	ID   address.ID
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

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
	err = s.addressRepository.Delete(ctx, input.User.ID, input.ID)
	if errors.Is(err, address.ErrAddressDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete address.",
			logging.Entry("addressId", input.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Address has been deleted.",
		logging.Entry("userId", input.User.ID),
		logging.Entry("addressId", input.ID),
	)
	return result, nil
}
