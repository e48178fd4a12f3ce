package response

import (
	"helperland/internal/core/domain/address"
)

type Address struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Mobile     *string `json:"mobile,omitempty"`
	Type       string  `json:"type"`
}

func (a *Address) FromDomainAddress(da address.Address) {
	a.ID = int64(da.ID)
	a.UserID = int64(da.UserID)
	a.Line1 = da.Line1
	if da.Line2.IsPresent {
		a.Line2 = &da.Line2.Value
	}
	a.City = da.City
	a.State = da.State
	a.PostalCode = da.PostalCode
	if da.Mobile.IsPresent {
		a.Mobile = &da.Mobile.Value
	}
	a.Type = string(da.Type)
}
