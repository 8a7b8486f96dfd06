// Package token issues and verifies the signed session tokens that stand in
// for server-side sessions. A token binds a subject (username) to an issue
// time and an expiry; validity is entirely a function of the HMAC signature
// and the expiry instant at verification time. Rotating the signing secret
// invalidates every outstanding token.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures, ordered by the check that produced them: structure,
// then signature, then expiry. The first failing check decides the error.
var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrExpired      = errors.New("token is expired")
	ErrUnsupported  = errors.New("token is unsupported")
)

// Codec signs and verifies session tokens with a symmetric secret. The
// secret and TTL are fixed at construction; there is no ambient lookup.
// A Codec is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns a Codec signing HS256 tokens with the given secret that
// expire ttl after issue.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token for subject with issuedAt = now and
// expiresAt = now + ttl.
func (c *Codec) Issue(subject string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks tokenStr and returns its subject. Checks run in order:
// structural well-formedness, signature against the configured secret, then
// expiry. Expiry is strict: a token is valid up to and excluding its expiry
// instant. Verify has no side effects.
func (c *Codec) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, c.keyFunc,
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", mapError(err)
	}
	return claims.Subject, nil
}

// keyFunc rejects any signing method other than HS256 so an attacker cannot
// downgrade the algorithm; the parser surfaces the rejection as unverifiable.
func (c *Codec) keyFunc(t *jwt.Token) (any, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
	}
	return c.secret, nil
}

// mapError collapses the parser's error chain onto the package taxonomy.
func mapError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ErrUnsupported
	default:
		return ErrUnsupported
	}
}
