package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Token verification failures. Callers present all of them to clients as the
// same generic unauthorized condition; they stay distinguishable for logging.
var (
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when the token's expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the identity a verified token proves.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed,
// time-limited identity tokens. Tokens are stateless: there is no server
// side revocation, logout is a client-side discard.
type TokenService interface {
	// Issue produces a signed token for the given user id, expiring a fixed
	// configured duration from now.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature integrity and expiry, returning the claims on
	// success, ErrTokenExpired or ErrTokenInvalid on failure.
	Verify(token string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
