package auth

import (
	"context"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/user"
	"helperland/internal/core/services"
	getuserbysessiontoken "helperland/internal/core/services/get_user_by_session_token"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	getUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	inner                 services.Service[T, S]
}

// WithAuthentication resolves the bearer session token from the request
// context into an account and threads it into the inner service input.
// A missing, malformed or dangling token fails with ErrInvalidSessionToken;
// storage failures propagate as is.
func WithAuthentication[T Input, S any](
	getUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result],
	inner services.Service[T, S],
) services.Service[T, S] {
	if getUserBySessionToken == nil {
		panic(e.NewNilArgumentError("getUserBySessionToken"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		getUserBySessionToken: getUserBySessionToken,
		inner:                 inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	if !ok {
		return result, user.ErrInvalidSessionToken
	}
	res, err := s.getUserBySessionToken.Run(ctx, getuserbysessiontoken.Input{Token: authToken})
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(res.User).(T))
}
