package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailNormalizesValue(t *testing.T) {
	cases := []struct {
		raw      string
		expected Email
	}{
		{"test@test.com", Email("test@test.com")},
		{"Test@Test.Com", Email("test@test.com")},
		{"  USER@EXAMPLE.COM ", Email("user@example.com")},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, NewEmail(c.raw))
	}
}

func TestOptionalString(t *testing.T) {
	present := NewOptional("value", true)
	absent := NewOptional("value", false)
	assert.Equal(t, "[value]", present.String())
	assert.Equal(t, "[-]", absent.String())
}
