package handler

import "net/http"

// GetHealth handles GET /healthz. It reports process liveness only; it does
// not touch the database.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
