package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItachiRD26/hotelgil/internal/auth"
)

func newAuthenticator(t *testing.T) *auth.Authenticator {
	t.Helper()
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return auth.NewAuthenticator("desk@hotelgil.do", hash, issuer)
}

func TestAuthenticator_Login_OK(t *testing.T) {
	a := newAuthenticator(t)

	token, err := a.Login("desk@hotelgil.do", "hunter2")

	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
}

func TestAuthenticator_Login_EmailNormalized(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Login("  Desk@HotelGil.do ", "hunter2")

	assert.NoError(t, err)
}

func TestAuthenticator_Login_WrongPassword(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Login("desk@hotelgil.do", "hunter3")

	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestAuthenticator_Login_WrongEmail(t *testing.T) {
	a := newAuthenticator(t)

	_, err := a.Login("intruder@example.com", "hunter2")

	// Same error for a wrong email as for a wrong password.
	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}
