package validatepasswordresettoken

import (
	"context"
	"errors"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	"time"
)

type Input struct {
	Token user.PasswordResetToken
}

type Result struct{}

type service struct {
	log                     logging.Logger
	passwordResetRepository user.PasswordResetRepository
	now                     func() time.Time
}

// New creates the read-only "is this reset link still good" check.
// It never consumes the token; consumption happens in reset_password.
func New(
	log logging.Logger,
	passwordResetRepository user.PasswordResetRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if passwordResetRepository == nil {
		panic(e.NewNilArgumentError("passwordResetRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                     log,
		passwordResetRepository: passwordResetRepository,
		now:                     now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.passwordResetRepository.GetLive(ctx, input.Token, s.now())
	if errors.Is(err, user.ErrInvalidPasswordResetToken) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not look up password reset token.", logging.Entry("err", err))
		return result, err
	}
	return result, nil
}
