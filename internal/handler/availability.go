package handler

import (
	"net/http"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/service"
)

// availabilityResponse is the GET /api/availability body: the queried window
// plus one entry per room, each carrying its occupied sub-window (null when
// the room is free for the whole range).
type availabilityResponse struct {
	From  domain.Date        `json:"from"`
	To    domain.Date        `json:"to"`
	Rooms []roomAvailability `json:"rooms"`
}

type roomAvailability struct {
	Room      domain.Room     `json:"room"`
	Available bool            `json:"available"`
	Occupied  *service.Window `json:"occupied,omitempty"`
}

// GetAvailability handles GET /api/availability?from=YYYY-MM-DD&to=YYYY-MM-DD.
// A room is available only when no reservation touches any day of the
// inclusive range; the occupied sub-window is reported for busy rooms so the
// calendar can show when they free up.
func (s *Server) GetAvailability(w http.ResponseWriter, r *http.Request) {
	from, err := domain.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		requestError(w, "query parameter from is required (YYYY-MM-DD)")
		return
	}
	to, err := domain.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		requestError(w, "query parameter to is required (YYYY-MM-DD)")
		return
	}
	if to.Before(from) {
		from, to = to, from
	}

	occupied, err := s.availability.Occupancy(r.Context(), from, to)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	resp := availabilityResponse{From: from, To: to}
	for _, room := range s.rooms.All() {
		entry := roomAvailability{Room: room, Available: true}
		if win, busy := occupied[room.Number]; busy {
			entry.Available = false
			entry.Occupied = &win
		}
		resp.Rooms = append(resp.Rooms, entry)
	}

	respondJSON(w, http.StatusOK, resp)
}
