package user

import (
	c "helperland/internal/core/domain/common"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID           ID
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
	FirstName    c.Optional[string]
	LastName     c.Optional[string]
	Mobile       c.Optional[string]
	IsApproved   c.Optional[bool]
	CreatedAt    time.Time
}
