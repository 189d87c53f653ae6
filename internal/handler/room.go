package handler

import "net/http"

// ListRooms handles GET /api/rooms. The catalog is static reference data, so
// the response is the same for every caller.
func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.rooms.All())
}
