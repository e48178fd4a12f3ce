package uow

import (
	"context"
	"fmt"
	"helperland/internal/core/domain/address"
	"helperland/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository          *user.FakeUserRepository
	PasswordResetRepository *user.FakePasswordResetRepository
	AddressRepository       *address.FakeRepository
	WasCommitCalled         bool
	WasRollbackCalled       bool
	CommitError             error
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) PasswordResets() user.PasswordResetRepository {
	return c.PasswordResetRepository
}

func (c *FakeUnitOfWorkContext) Addresses() address.Repository {
	return c.AddressRepository
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	if c.CommitError != nil {
		return c.CommitError
	}
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	ReturnError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: &FakeUnitOfWorkContext{
			UserRepository:          user.NewFakeUserRepository(),
			PasswordResetRepository: user.NewFakePasswordResetRepository(),
			AddressRepository:       address.NewFakeRepository(),
		},
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, fmt.Errorf("could not begin unit of work")
	}
	return u.Context, nil
}

func (u *FakeUnitOfWork) Users() *user.FakeUserRepository {
	return u.Context.UserRepository
}

func (u *FakeUnitOfWork) PasswordResets() *user.FakePasswordResetRepository {
	return u.Context.PasswordResetRepository
}

func (u *FakeUnitOfWork) Addresses() *address.FakeRepository {
	return u.Context.AddressRepository
}
