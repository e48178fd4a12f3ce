package user

import c "helperland/internal/core/domain/common"

type SessionToken string

// SessionClaims is the claim shape embedded into every session token.
// Downstream role checks rely on it, so issuers must keep it stable.
type SessionClaims struct {
	UserID ID
	Email  c.Email
	Role   Role
}

type SessionTokenIssuer interface {
	Issue(u User) (SessionToken, error)
	Verify(token SessionToken) (SessionClaims, error)
}
