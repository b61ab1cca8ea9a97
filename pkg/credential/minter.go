// Package credential mints short-lived signed tokens for embedding in
// rendered response bodies via the {{auth.jwt}} placeholder.
package credential

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mocklet/mocklet/internal/id"
)

// ErrNoSigningKey is returned when the minter has no key material. The
// renderer folds this into a degraded response; it never crashes the service.
var ErrNoSigningKey = errors.New("signing key unavailable")

// Minter issues HS256-signed JSON claim sets using a process-wide key.
// The key comes from configuration and is rotated out-of-band; it is not
// request state. A Minter is safe for concurrent use.
type Minter struct {
	key []byte
}

// NewMinter creates a Minter with the given symmetric key.
func NewMinter(key []byte) *Minter {
	return &Minter{key: key}
}

// Mint issues a fresh signed token. Each call produces a distinct token
// (unique jti); reuse within a single render pass is the render context's
// job, not the minter's.
func (m *Minter) Mint() (string, error) {
	if len(m.key) == 0 {
		return "", ErrNoSigningKey
	}

	claims := jwt.MapClaims{
		"role": "user",
		"iat":  time.Now().Unix(),
		"jti":  id.Short(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
