// Package token inspects stored access tokens for diagnostics. The
// booking backend issues JWTs; decoding them without verification lets
// the client show when a token will expire. No validation happens here;
// the server remains the only authority on token acceptance, and there is
// no silent refresh: once the access token expires, re-login is the
// recovery path.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when the token does not parse as a JWT; opaque
// tokens are valid credentials, they just carry no readable expiry.
var ErrNotJWT = errors.New("token is not a decodable JWT")

// Expiry returns the expiry time embedded in the access token, without
// verifying its signature.
func Expiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, ErrNotJWT
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNotJWT
	}
	return exp.Time, nil
}

// Expired reports whether the token carries an expiry in the past. Tokens
// without a readable expiry report false; the server decides.
func Expired(accessToken string) bool {
	exp, err := Expiry(accessToken)
	if err != nil {
		return false
	}
	return exp.Before(time.Now())
}
