package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItachiRD26/hotelgil/internal/middleware"
)

// mockVerifier is a test double for middleware.TokenVerifier.
type mockVerifier struct {
	verify func(token string) (string, error)
}

func (m *mockVerifier) Verify(token string) (string, error) { return m.verify(token) }

var _ middleware.TokenVerifier = (*mockVerifier)(nil)

func TestAuthHandler_ValidToken_PassesThrough(t *testing.T) {
	verifier := &mockVerifier{
		verify: func(token string) (string, error) {
			assert.Equal(t, "good-token", token)
			return "desk@hotelgil.do", nil
		},
	}

	var gotSubject string
	h := middleware.NewAuthHandler(verifier)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSubject = middleware.Subject(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations?date=2026-01-01", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "desk@hotelgil.do", gotSubject)
}

func TestAuthHandler_InvalidToken_Returns401(t *testing.T) {
	verifier := &mockVerifier{
		verify: func(_ string) (string, error) { return "", errors.New("invalid token") },
	}

	handlerCalled := false
	h := middleware.NewAuthHandler(verifier)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { handlerCalled = true }),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerCalled, "downstream handler must not run without a valid token")
}

func TestAuthHandler_MissingOrMalformedHeader_Returns401(t *testing.T) {
	verifier := &mockVerifier{
		verify: func(_ string) (string, error) {
			t.Fatal("verifier must not be called without a bearer header")
			return "", nil
		},
	}
	h := middleware.NewAuthHandler(verifier)(trivialHandler)

	for _, header := range []string{"", "Basic dXNlcjpwYXNz", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthHandler_SubjectEmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, middleware.Subject(req.Context()))
}
