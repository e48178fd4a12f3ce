package signup

import (
	"context"
	"errors"
	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	uow "helperland/internal/core/domain/unit_of_work"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"time"
)

type Input struct {
	Email     c.Email
	Password  user.RawPassword
	Role      user.Role
	FirstName c.Optional[string]
	LastName  c.Optional[string]
	Mobile    c.Optional[string]
}

type Result struct {
	User user.User
	// Token is set only for roles the sign-up session policy allows.
	Token c.Optional[user.SessionToken]
}

type service struct {
	log                logging.Logger
	unitOfWork         uow.UnitOfWork
	passwordHasher     user.PasswordHasher
	sessionTokenIssuer user.SessionTokenIssuer
	now                func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	sessionTokenIssuer user.SessionTokenIssuer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if sessionTokenIssuer == nil {
		panic(e.NewNilArgumentError("sessionTokenIssuer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		unitOfWork:         unitOfWork,
		passwordHasher:     passwordHasher,
		sessionTokenIssuer: sessionTokenIssuer,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Mobile:       input.Mobile,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"User with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	result.User = createdUser
	if createdUser.Role.IssuesSessionOnSignUp() {
		sessionToken, err := s.sessionTokenIssuer.Issue(createdUser)
		if err != nil {
			s.log.Error(
				ctx,
				"Could not issue session token for new user.",
				logging.Entry("userId", createdUser.ID),
				logging.Entry("err", err),
			)
			return result, err
		}
		result.Token = c.NewOptional(sessionToken, true)
	}

	s.log.Info(ctx, "New user has been created.", logging.Entry("userId", createdUser.ID))
	return result, nil
}
