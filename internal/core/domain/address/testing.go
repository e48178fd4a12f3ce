package address

import (
	"context"
	"fmt"
	"helperland/internal/core/domain/user"
	"sync"
)

type FakeRepository struct {
	Addresses   []Address
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateAddressInput) (a Address, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create address")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, a := range r.Addresses {
		maxID = a.ID
	}
	a = Address{
		ID:         maxID + 1,
		UserID:     input.UserID,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Mobile:     input.Mobile,
		Type:       input.Type,
	}
	r.Addresses = append(r.Addresses, a)
	return a, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateAddressInput) (a Address, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not update address")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Addresses {
		if a.ID == input.ID && a.UserID == input.UserID {
			if input.Line1.IsPresent {
				r.Addresses[ix].Line1 = input.Line1.Value
			}
			if input.Line2.IsPresent {
				r.Addresses[ix].Line2 = input.Line2
			}
			if input.City.IsPresent {
				r.Addresses[ix].City = input.City.Value
			}
			if input.State.IsPresent {
				r.Addresses[ix].State = input.State.Value
			}
			if input.PostalCode.IsPresent {
				r.Addresses[ix].PostalCode = input.PostalCode.Value
			}
			if input.Mobile.IsPresent {
				r.Addresses[ix].Mobile = input.Mobile
			}
			if input.Type.IsPresent {
				r.Addresses[ix].Type = input.Type.Value
			}
			return r.Addresses[ix], nil
		}
	}
	return a, ErrAddressDoesNotExist
}

func (r *FakeRepository) GetByID(ctx context.Context, userID user.ID, id ID) (a Address, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not get address")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, a := range r.Addresses {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return a, ErrAddressDoesNotExist
}

func (r *FakeRepository) GetByUser(ctx context.Context, userID user.ID) ([]Address, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not get addresses")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	addresses := make([]Address, 0)
	for _, a := range r.Addresses {
		if a.UserID == userID {
			addresses = append(addresses, a)
		}
	}
	return addresses, nil
}

func (r *FakeRepository) Delete(ctx context.Context, userID user.ID, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete address")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, a := range r.Addresses {
		if a.ID == id && a.UserID == userID {
			r.Addresses = append(r.Addresses[:ix], r.Addresses[ix+1:]...)
			return nil
		}
	}
	return ErrAddressDoesNotExist
}
