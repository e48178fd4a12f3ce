package user

import (
	"context"
	"crypto/md5"
	"fmt"
	c "helperland/internal/core/domain/common"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeSessionTokenIssuer struct {
	VerifyError error
}

func NewFakeSessionTokenIssuer() *FakeSessionTokenIssuer {
	return &FakeSessionTokenIssuer{}
}

func (i *FakeSessionTokenIssuer) Issue(u User) (SessionToken, error) {
	return SessionToken(fmt.Sprintf("token::%d::%s::%s", u.ID, u.Email, u.Role)), nil
}

func (i *FakeSessionTokenIssuer) Verify(token SessionToken) (claims SessionClaims, err error) {
	if i.VerifyError != nil {
		return claims, i.VerifyError
	}
	parts := strings.Split(string(token), "::")
	if len(parts) != 4 || parts[0] != "token" {
		return claims, ErrInvalidSessionToken
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return claims, ErrInvalidSessionToken
	}
	return SessionClaims{UserID: ID(id), Email: c.Email(parts[2]), Role: Role(parts[3])}, nil
}

type FakePasswordResetTokenGenerator struct {
	Token   PasswordResetToken
	counter int64
	lock    sync.Mutex
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: PasswordResetToken(token)}
}

func (g *FakePasswordResetTokenGenerator) GeneratePasswordResetToken() PasswordResetToken {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	if g.counter == 1 {
		return g.Token
	}
	return PasswordResetToken(fmt.Sprintf("%s-%d", g.Token, g.counter))
}

type FakePasswordResetTokenSender struct {
	Sent        []PasswordResetToken
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	user User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, user)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type FakeWelcomeEmailSender struct {
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeWelcomeEmailSender() *FakeWelcomeEmailSender {
	return &FakeWelcomeEmailSender{}
}

func (s *FakeWelcomeEmailSender) SendWelcomeEmail(ctx context.Context, user User) error {
	if s.ReturnError {
		return fmt.Errorf("could not send welcome email")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, user)
	return nil
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Mobile:       input.Mobile,
		IsApproved:   input.IsApproved,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by id %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetAll(ctx context.Context) ([]User, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not get users")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.FirstName.IsPresent {
				r.Users[ix].FirstName = input.FirstName
			}
			if input.LastName.IsPresent {
				r.Users[ix].LastName = input.LastName
			}
			if input.Mobile.IsPresent {
				r.Users[ix].Mobile = input.Mobile
			}
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordResetRepository struct {
	Resets      []PasswordReset
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetRepository() *FakePasswordResetRepository {
	return &FakePasswordResetRepository{}
}

func (r *FakePasswordResetRepository) Create(
	ctx context.Context,
	input CreatePasswordResetInput,
) (p PasswordReset, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not create password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p = PasswordReset{
		Token:     input.Token,
		UserID:    input.UserID,
		IssuedAt:  input.IssuedAt,
		ExpiresAt: input.ExpiresAt,
	}
	r.Resets = append(r.Resets, p)
	return p, nil
}

func (r *FakePasswordResetRepository) GetLive(
	ctx context.Context,
	token PasswordResetToken,
	now time.Time,
) (p PasswordReset, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not get password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, reset := range r.Resets {
		if reset.Token == token && reset.IsLive(now) {
			return reset, nil
		}
	}
	return p, ErrInvalidPasswordResetToken
}

func (r *FakePasswordResetRepository) Consume(
	ctx context.Context,
	token PasswordResetToken,
	at time.Time,
) (p PasswordReset, err error) {
	if r.ReturnError {
		return p, fmt.Errorf("could not consume password reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, reset := range r.Resets {
		if reset.Token == token && reset.IsLive(at) {
			r.Resets[ix].ConsumedAt = c.NewOptional(at, true)
			return r.Resets[ix], nil
		}
	}
	return p, ErrInvalidPasswordResetToken
}

func (r *FakePasswordResetRepository) SupersedeAllForUser(
	ctx context.Context,
	userID ID,
	at time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not supersede password reset tokens")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, reset := range r.Resets {
		if reset.UserID == userID && reset.IsLive(at) {
			r.Resets[ix].SupersededAt = c.NewOptional(at, true)
		}
	}
	return nil
}
