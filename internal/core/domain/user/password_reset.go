package user

import (
	"context"
	c "helperland/internal/core/domain/common"
	"time"
)

type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

// PasswordReset is the durable record behind a reset link. A token is
// live while it is unconsumed, unsuperseded and unexpired; every
// terminal state is reported to callers as the same invalid-token error.
type PasswordReset struct {
	Token        PasswordResetToken
	UserID       ID
	IssuedAt     time.Time
	ExpiresAt    time.Time
	ConsumedAt   c.Optional[time.Time]
	SupersededAt c.Optional[time.Time]
}

func (p PasswordReset) IsLive(now time.Time) bool {
	if p.ConsumedAt.IsPresent || p.SupersededAt.IsPresent {
		return false
	}
	return now.Before(p.ExpiresAt)
}

type CreatePasswordResetInput struct {
	Token     PasswordResetToken
	UserID    ID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type PasswordResetRepository interface {
	// Create inserts a new token record. It does not touch older tokens;
	// callers supersede outstanding ones first, in the same transaction.
	Create(ctx context.Context, input CreatePasswordResetInput) (PasswordReset, error)
	// GetLive returns the record only if the token is live at the given
	// moment, ErrInvalidPasswordResetToken otherwise.
	GetLive(ctx context.Context, token PasswordResetToken, now time.Time) (PasswordReset, error)
	// Consume atomically flips a live token to consumed. At most one
	// concurrent caller succeeds; all others get ErrInvalidPasswordResetToken.
	Consume(ctx context.Context, token PasswordResetToken, at time.Time) (PasswordReset, error)
	// SupersedeAllForUser invalidates every live token of the user.
	SupersedeAllForUser(ctx context.Context, userID ID, at time.Time) error
}

type PasswordResetTokenGenerator interface {
	GeneratePasswordResetToken() PasswordResetToken
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, user User, token PasswordResetToken) error
}
