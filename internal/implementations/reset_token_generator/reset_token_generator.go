package resettokengenerator

import (
	"crypto/rand"
	"encoding/base64"

	"helperland/internal/core/domain/user"
)

// Generator produces URL safe reset tokens from crypto/rand. Tokens end
// up in emailed links, so they must be unguessable and need no escaping.
type Generator struct {
	numBytes int
}

func NewGenerator() *Generator {
	return &Generator{numBytes: 32}
}

func (g *Generator) GeneratePasswordResetToken() user.PasswordResetToken {
	b := make([]byte, g.numBytes)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return user.PasswordResetToken(base64.RawURLEncoding.EncodeToString(b))
}
