package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/service"
)

// csvHeaders defines the column names written as the first row of any CSV
// export. The trailing "TOTAL" row reuses the same columns.
var csvHeaders = []string{
	"checkin", "guest_name", "rooms", "status", "collected", "outstanding",
}

// exportResponse is the JSON shape of GET /api/export: the per-reservation
// rows plus the collected/outstanding sums.
type exportResponse struct {
	Rows   []domain.ExportRow  `json:"rows"`
	Totals domain.ExportTotals `json:"totals"`
}

// GetExport handles GET /api/export.
// ?kind selects the window: "day" (with ?date=YYYY-MM-DD), "month" (with
// ?year= and ?month=), or "year" (with ?year=). Use ?format=csv to receive
// CSV with a trailing TOTAL row; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	filter, err := exportFilterFromQuery(r)
	if err != nil {
		requestError(w, err.Error())
		return
	}

	rows, totals, err := s.stats.ExportRows(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows, totals)
		return
	}
	respondJSON(w, http.StatusOK, exportResponse{Rows: rows, Totals: totals})
}

// exportFilterFromQuery parses the kind-specific query parameters into a
// service.ExportFilter. The service validates the resolved window again.
func exportFilterFromQuery(r *http.Request) (service.ExportFilter, error) {
	q := r.URL.Query()
	kind := service.FilterKind(q.Get("kind"))

	switch kind {
	case service.FilterDay:
		day, err := domain.ParseDate(q.Get("date"))
		if err != nil {
			return service.ExportFilter{}, errRequired("date", "YYYY-MM-DD")
		}
		return service.ExportFilter{Kind: kind, Day: day}, nil

	case service.FilterMonth:
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			return service.ExportFilter{}, errRequired("year", "a number")
		}
		month, err := strconv.Atoi(q.Get("month"))
		if err != nil {
			return service.ExportFilter{}, errRequired("month", "1-12")
		}
		return service.ExportFilter{Kind: kind, Year: year, Month: time.Month(month)}, nil

	case service.FilterYear:
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			return service.ExportFilter{}, errRequired("year", "a number")
		}
		return service.ExportFilter{Kind: kind, Year: year}, nil
	}

	return service.ExportFilter{}, errRequired("kind", "day, month, or year")
}

// writeCSV encodes the rows as CSV: a header row, one row per reservation,
// and a trailing TOTAL row with the collected/outstanding sums.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow, totals domain.ExportTotals) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(row.Record())
	}
	//nolint:errcheck
	cw.Write(totals.Record())
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="reservations.csv"`)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// paramError is a query-parameter validation failure.
type paramError struct {
	param, expected string
}

func errRequired(param, expected string) error {
	return paramError{param: param, expected: expected}
}

func (e paramError) Error() string {
	return "query parameter " + e.param + " is required (" + e.expected + ")"
}
