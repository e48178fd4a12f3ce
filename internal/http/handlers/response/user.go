package response

import (
	"helperland/internal/core/domain/user"
	"time"
)

// User is the wire shape of an account. Password hashes never appear here.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	FirstName  *string   `json:"first_name,omitempty"`
	LastName   *string   `json:"last_name,omitempty"`
	Mobile     *string   `json:"mobile,omitempty"`
	IsApproved *bool     `json:"is_approved,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Role = string(du.Role)
	if du.FirstName.IsPresent {
		u.FirstName = &du.FirstName.Value
	}
	if du.LastName.IsPresent {
		u.LastName = &du.LastName.Value
	}
	if du.Mobile.IsPresent {
		u.Mobile = &du.Mobile.Value
	}
	if du.IsApproved.IsPresent {
		u.IsApproved = &du.IsApproved.Value
	}
	u.CreatedAt = du.CreatedAt
}
