package address

import (
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
)

type ID int64

type Type string

const (
	TypeBilling Type = "billing"
	TypeService Type = "service"
)

func NewType(raw string) (Type, bool) {
	switch Type(raw) {
	case TypeBilling, TypeService:
		return Type(raw), true
	}
	return "", false
}

type Address struct {
	ID         ID
	UserID     user.ID
	Line1      string
	Line2      c.Optional[string]
	City       string
	State      string
	PostalCode string
	Mobile     c.Optional[string]
	Type       Type
}
