// Package auth provides the staff session primitives: short-lived signed
// session tokens and bcrypt password verification. The admin calendar is
// gated behind a single configured staff credential; there is no user table.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that is malformed,
// tampered with, signed with the wrong key, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Token is a signed session token together with its expiry.
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Issuer creates and verifies HS256-signed session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer constructs an Issuer with the given signing secret and token
// lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the given staff email. Claims follow the
// usual shape: sub holds the email, exp and iat are Unix timestamps.
func (i *Issuer) Issue(email string) (Token, error) {
	now := time.Now().UTC()
	exp := now.Add(i.ttl)

	claims := jwt.MapClaims{
		"sub": email,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("auth.Issuer.Issue: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp}, nil
}

// Verify checks the signature and expiry of a session token and returns the
// staff email it was issued for.
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}
