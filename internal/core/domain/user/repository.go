package user

import (
	"context"
	c "helperland/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
	FirstName    c.Optional[string]
	LastName     c.Optional[string]
	Mobile       c.Optional[string]
	IsApproved   c.Optional[bool]
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID        ID
	FirstName c.Optional[string]
	LastName  c.Optional[string]
	Mobile    c.Optional[string]
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}
