package address

import (
	"context"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
)

type CreateAddressInput struct {
	UserID     user.ID
	Line1      string
	Line2      c.Optional[string]
	City       string
	State      string
	PostalCode string
	Mobile     c.Optional[string]
	Type       Type
}

type UpdateAddressInput struct {
	ID         ID
	UserID     user.ID
	Line1      c.Optional[string]
	Line2      c.Optional[string]
	City       c.Optional[string]
	State      c.Optional[string]
	PostalCode c.Optional[string]
	Mobile     c.Optional[string]
	Type       c.Optional[Type]
}

// All reads and writes are scoped by the owning user: a repository must
// report ErrAddressDoesNotExist for an id that belongs to someone else.
type Repository interface {
	Create(ctx context.Context, input CreateAddressInput) (Address, error)
	Update(ctx context.Context, input UpdateAddressInput) (Address, error)
	GetByID(ctx context.Context, userID user.ID, id ID) (Address, error)
	GetByUser(ctx context.Context, userID user.ID) ([]Address, error)
	Delete(ctx context.Context, userID user.ID, id ID) error
}
