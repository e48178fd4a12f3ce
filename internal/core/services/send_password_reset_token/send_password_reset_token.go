package sendpasswordresettoken

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
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

type Result struct {
	// Token is surfaced so test-mode handlers can expose it; the
	// delivery channel for real callers is the email sender.
	Token user.PasswordResetToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	unitOfWork     uow.UnitOfWork
	tokenGenerator user.PasswordResetTokenGenerator
	tokenSender    user.PasswordResetTokenSender
	validDuration  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	unitOfWork uow.UnitOfWork,
	tokenGenerator user.PasswordResetTokenGenerator,
	tokenSender user.PasswordResetTokenSender,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		unitOfWork:     unitOfWork,
		tokenGenerator: tokenGenerator,
		tokenSender:    tokenSender,
		validDuration:  validDuration,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	now := s.now()
	token := s.tokenGenerator.GeneratePasswordResetToken()

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	// A new token invalidates every outstanding one, so a stale link
	// can not be replayed after the user asks again.
	if err := uow.PasswordResets().SupersedeAllForUser(ctx, u.ID, now); err != nil {
		s.log.Error(
			ctx,
			"Could not supersede outstanding password reset tokens.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	_, err = uow.PasswordResets().Create(ctx, user.CreatePasswordResetInput{
		Token:     token,
		UserID:    u.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.validDuration),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	if err := s.tokenSender.SendPasswordResetToken(ctx, u, token); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token issued and sent.",
		logging.Entry("userId", u.ID),
	)
	return Result{Token: token}, nil
}
