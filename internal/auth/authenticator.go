package auth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadCredentials is returned by Login for any wrong email or password.
// The message is deliberately identical for both cases.
var ErrBadCredentials = errors.New("invalid email or password")

// Authenticator checks the single configured staff credential and hands out
// session tokens.
type Authenticator struct {
	email        string
	passwordHash string
	issuer       *Issuer
}

// NewAuthenticator constructs an Authenticator for the configured staff
// email and bcrypt password hash.
func NewAuthenticator(email, passwordHash string, issuer *Issuer) *Authenticator {
	return &Authenticator{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		issuer:       issuer,
	}
}

// Login verifies the staff credential and issues a session token.
// bcrypt comparison runs even for a wrong email so both failure paths cost
// roughly the same.
func (a *Authenticator) Login(email, password string) (Token, error) {
	emailOK := strings.ToLower(strings.TrimSpace(email)) == a.email
	passwordOK := VerifyPassword(a.passwordHash, password)
	if !emailOK || !passwordOK {
		return Token{}, ErrBadCredentials
	}

	token, err := a.issuer.Issue(a.email)
	if err != nil {
		return Token{}, fmt.Errorf("auth.Authenticator.Login: %w", err)
	}
	return token, nil
}
