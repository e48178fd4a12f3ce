package getprofile

import (
	"context"
	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"helperland/internal/core/services/auth"
)

type Input struct {
	Email c.Email
	User  user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{log: log, userRepository: userRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// Owner or admin only. A denied lookup is indistinguishable from a
	// missing profile so the endpoint can not be used for enumeration.
	if input.Email != input.User.Email && input.User.Role != user.RoleAdmin {
		return result, user.ErrUserDoesNotExist
	}
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err != nil {
		return result, err
	}
	return Result{User: u}, nil
}
