package address

import "errors"

var (
	ErrAddressDoesNotExist = errors.New("address does not exist")
	ErrInvalidAddressID    = errors.New("invalid address id")
)
