package signup

import (
	"context"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/logging"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
)

type serviceWithWelcomeEmailSending struct {
	log    logging.Logger
	sender user.WelcomeEmailSender
	inner  services.Service[Input, Result]
}

// NewWithWelcomeEmailSending decorates sign-up with a best-effort welcome
// email. A failed send never fails the sign-up itself.
func NewWithWelcomeEmailSending(
	log logging.Logger,
	sender user.WelcomeEmailSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithWelcomeEmailSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

func (s *serviceWithWelcomeEmailSending) Run(ctx context.Context, input Input) (Result, error) {
	result, err := s.inner.Run(ctx, input)
	if err != nil {
		return result, err
	}
	if err := s.sender.SendWelcomeEmail(ctx, result.User); err != nil {
		s.log.Error(
			ctx,
			"Could not send welcome email.",
			logging.Entry("userId", result.User.ID),
			logging.Entry("err", err),
		)
	}
	return result, nil
}
