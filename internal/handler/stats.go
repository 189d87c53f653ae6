package handler

import (
	"net/http"
	"strconv"
	"time"
)

// GetStats handles GET /api/stats?year=YYYY&month=M.
// It returns the prorated dashboard totals for the requested calendar month.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		requestError(w, "query parameter year is required")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		requestError(w, "query parameter month is required")
		return
	}

	stats, err := s.stats.MonthStats(r.Context(), year, time.Month(month))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
