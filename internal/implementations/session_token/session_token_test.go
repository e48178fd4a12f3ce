package sessiontoken

import (
	"errors"
	c "helperland/internal/core/domain/common"
	"helperland/internal/core/domain/user"
	"testing"
	"time"
)

const (
	SECRET         = "test-jwt-secret"
	VALID_DURATION = 24 * time.Hour
)

var NOW time.Time = time.Now().UTC()

func TestIssueAndVerify(t *testing.T) {
	issuer := NewJWT([]byte(SECRET), VALID_DURATION, func() time.Time { return NOW })
	u := user.User{
		ID:    user.ID(42),
		Email: c.NewEmail("test@test.test"),
		Role:  user.RoleProvider,
	}

	token, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("could not issue token: %v", err)
	}
	if token == user.SessionToken("") {
		t.Fatal("token must not be empty")
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("could not verify token: %v", err)
	}
	if claims.UserID != u.ID {
		t.Fatalf("unexpected user id: %v", claims.UserID)
	}
	if claims.Email != u.Email {
		t.Fatalf("unexpected email: %v", claims.Email)
	}
	if claims.Role != u.Role {
		t.Fatalf("unexpected role: %v", claims.Role)
	}
}

func TestTokensAreUnique(t *testing.T) {
	issuer := NewJWT([]byte(SECRET), VALID_DURATION, func() time.Time { return NOW })
	u := user.User{ID: user.ID(1), Email: c.NewEmail("test@test.test"), Role: user.RoleCustomer}

	first, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("could not issue token: %v", err)
	}
	second, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("could not issue token: %v", err)
	}
	if first == second {
		t.Fatal("tokens must differ between issuances")
	}
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	issuer := NewJWT([]byte(SECRET), VALID_DURATION, func() time.Time { return NOW })
	u := user.User{ID: user.ID(1), Email: c.NewEmail("test@test.test"), Role: user.RoleCustomer}

	token, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("could not issue token: %v", err)
	}

	later := NewJWT([]byte(SECRET), VALID_DURATION, func() time.Time { return NOW.Add(VALID_DURATION + time.Minute) })
	_, err = later.Verify(token)
	if !errors.Is(err, user.ErrInvalidSessionToken) {
		t.Fatalf("expected invalid session token error, got: %v", err)
	}
}

func TestWrongSecretIsInvalid(t *testing.T) {
	issuer := NewJWT([]byte(SECRET), VALID_DURATION, func() time.Time { return NOW })
	u := user.User{ID: user.ID(1), Email: c.NewEmail("test@test.test"), Role: user.RoleCustomer}

	token, err := issuer.Issue(u)
	if err != nil {
		t.Fatalf("could not issue token: %v", err)
	}

	other := NewJWT([]byte("another-secret"), VALID_DURATION, func() time.Time { return NOW })
	_, err = other.Verify(token)
	if !errors.Is(err, user.ErrInvalidSessionToken) {
		t.Fatalf("expected invalid session token error, got: %v", err)
	}
}

func TestGarbageTokenIsInvalid(t *testing.T) {
	issuer := NewJWT([]byte(SECRET), VALID_DURATION, func() time.Time { return NOW })

	_, err := issuer.Verify(user.SessionToken("not-a-jwt"))
	if !errors.Is(err, user.ErrInvalidSessionToken) {
		t.Fatalf("expected invalid session token error, got: %v", err)
	}
}
