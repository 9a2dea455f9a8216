package auth

import (
	"testing"

	"storely/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // minimum cost keeps tests fast
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        16,
			RequireUppercase: true,
			RequireSpecial:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "Str0ng!pwd"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Wr0ng!pwd", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	assert.NoError(t, hasher.ValidatePasswordStrength("Str0ng!pwd"))

	weak := map[string]string{
		"too short":    "S!a1",
		"too long":     "Str0ng!Password12345",
		"no uppercase": "str0ng!pwd",
		"no special":   "Str0ngPwd1",
	}
	for name, password := range weak {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, hasher.ValidatePasswordStrength(password))
		})
	}
}
