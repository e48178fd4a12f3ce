package sessiontoken

import (
	"strconv"
	"time"

	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWT issues and verifies HS256 signed session tokens. The token carries
// the user id as subject plus email and role, so authorization checks do
// not need an extra lookup to learn who is calling.
type JWT struct {
	secret        []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secret []byte, validDuration time.Duration, now func() time.Time) *JWT {
	if len(secret) == 0 {
		panic(e.NewNilArgumentError("secret"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &JWT{secret: secret, validDuration: validDuration, now: now}
}

func (j *JWT) Issue(u user.User) (user.SessionToken, error) {
	now := j.now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		sessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   strconv.FormatInt(int64(u.ID), 10),
				ID:        uuid.NewString(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(j.validDuration)),
			},
			Email: string(u.Email),
			Role:  string(u.Role),
		},
	)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", err
	}
	return user.SessionToken(signed), nil
}

func (j *JWT) Verify(token user.SessionToken) (claims user.SessionClaims, err error) {
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&sessionClaims{},
		func(t *jwt.Token) (interface{}, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !parsed.Valid {
		return claims, user.ErrInvalidSessionToken
	}
	parsedClaims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return claims, user.ErrInvalidSessionToken
	}
	userID, err := strconv.ParseInt(parsedClaims.Subject, 10, 64)
	if err != nil {
		return claims, user.ErrInvalidSessionToken
	}
	role, ok := user.NewRole(parsedClaims.Role)
	if !ok {
		return claims, user.ErrInvalidSessionToken
	}
	return user.SessionClaims{
		UserID: user.ID(userID),
		Email:  c.NewEmail(parsedClaims.Email),
		Role:   role,
	}, nil
}
