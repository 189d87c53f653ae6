package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ItachiRD26/hotelgil/internal/auth"
)

// loginRequest is the POST /api/login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostLogin handles POST /api/login. On success it returns the session token
// and its expiry; any bad credential gets the same 401.
func (s *Server) PostLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body must be valid JSON")
		return
	}
	if req.Email == "" || req.Password == "" {
		requestError(w, "email and password are required")
		return
	}

	token, err := s.login.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			respondError(w, http.StatusUnauthorized, "bad_credentials", auth.ErrBadCredentials.Error())
			return
		}
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, token)
}
