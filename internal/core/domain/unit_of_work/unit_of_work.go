package uow

import (
	"context"
	"helperland/internal/core/domain/address"
	"helperland/internal/core/domain/user"
)

type Context interface {
	Users() user.UserRepository
	PasswordResets() user.PasswordResetRepository
	Addresses() address.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
