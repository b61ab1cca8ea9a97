// Package authgate validates bearer-token protection on endpoints.
package authgate

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// ErrUnauthorized is returned when a protected endpoint receives a missing
// or mismatched bearer token. Terminal for the request (401).
var ErrUnauthorized = errors.New("unauthorized")

const bearerPrefix = "Bearer "

// Check gates access to an endpoint. An unset protectedToken always
// allows. Otherwise the Authorization header must carry exactly
// "Bearer <token>"; the comparison is constant-time so token length and
// prefix matches cannot be probed through response timing.
func Check(protectedToken, authorizationHeader string) error {
	if protectedToken == "" {
		return nil
	}

	presented := strings.TrimPrefix(authorizationHeader, bearerPrefix)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(protectedToken)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
