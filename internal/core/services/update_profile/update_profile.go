package updateprofile

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
	FirstName c.Optional[string]
	LastName  c.Optional[string]
	Mobile    c.Optional[string]
	User      user.User
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
	u, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:        input.User.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Mobile:    input.Mobile,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user profile.",
			logging.Entry("userId", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "User profile has been updated.", logging.Entry("userId", u.ID))
	return Result{User: u}, nil
}
