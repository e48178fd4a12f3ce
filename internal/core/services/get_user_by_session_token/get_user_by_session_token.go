package getuserbysessiontoken

import (
	"context"
	"errors"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log                logging.Logger
	sessionTokenIssuer user.SessionTokenIssuer
	userRepository     user.UserRepository
}

func New(
	log logging.Logger,
	sessionTokenIssuer user.SessionTokenIssuer,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionTokenIssuer == nil {
		panic(e.NewNilArgumentError("sessionTokenIssuer"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:                log,
		sessionTokenIssuer: sessionTokenIssuer,
		userRepository:     userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	claims, err := s.sessionTokenIssuer.Verify(input.Token)
	if err != nil {
		return result, user.ErrInvalidSessionToken
	}
	u, err := s.userRepository.GetByID(ctx, claims.UserID)
	// Only a missing account invalidates the token. Storage failures are
	// not authentication failures and propagate as is.
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidSessionToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for session token.",
			logging.Entry("userId", claims.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{User: u}, nil
}
