package domain

import "strconv"

// ExportRow is a single row of the filtered reservation export: the full-stay
// settlement of one reservation whose range touches the requested window.
// Export rows are deliberately not prorated — the dashboard does
// calendar-month accounting, the export shows full-reservation detail.
//
// CheckinDMY is pre-formatted as "DD/MM/YYYY" for the front-desk locale.
type ExportRow struct {
	CheckinDMY  string        `json:"checkin"`
	GuestName   string        `json:"guest_name"`
	RoomNumbers string        `json:"rooms"` // comma-joined, e.g. "101, 203"
	Status      PaymentStatus `json:"status"`
	Collected   int64         `json:"collected"`
	Outstanding int64         `json:"outstanding"`
}

// ExportTotals sums collected and outstanding across all exported rows.
type ExportTotals struct {
	Collected   int64 `json:"collected"`
	Outstanding int64 `json:"outstanding"`
}

// Record flattens the row for CSV output.
func (r ExportRow) Record() []string {
	return []string{
		r.CheckinDMY,
		r.GuestName,
		r.RoomNumbers,
		string(r.Status),
		strconv.FormatInt(r.Collected, 10),
		strconv.FormatInt(r.Outstanding, 10),
	}
}

// Record flattens the totals into the trailing "TOTAL" CSV row.
func (t ExportTotals) Record() []string {
	return []string{
		"TOTAL",
		"",
		"",
		"",
		strconv.FormatInt(t.Collected, 10),
		strconv.FormatInt(t.Outstanding, 10),
	}
}
