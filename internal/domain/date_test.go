package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItachiRD26/hotelgil/internal/domain"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := domain.ParseDate("2026-01-28")

	require.NoError(t, err)
	assert.Equal(t, "2026-01-28", d.String())
	assert.Equal(t, "28/01/2026", d.DMY())
}

func TestParseDate_Malformed(t *testing.T) {
	for _, raw := range []string{"", "28/01/2026", "2026-1-28", "not-a-date"} {
		_, err := domain.ParseDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := domain.MustParseDate("2026-02-03")

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-03"`, string(raw))

	var back domain.Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))
}

func TestDate_DaysUntil(t *testing.T) {
	checkin := domain.MustParseDate("2026-01-28")
	checkout := domain.MustParseDate("2026-02-03")

	assert.Equal(t, 6, checkin.DaysUntil(checkout))
	assert.Equal(t, -6, checkout.DaysUntil(checkin))
	assert.Equal(t, 0, checkin.DaysUntil(checkin))
}

func TestRangesOverlap(t *testing.T) {
	d := domain.MustParseDate

	tests := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo string
		want                   bool
	}{
		{"disjoint before", "2026-01-01", "2026-01-05", "2026-01-06", "2026-01-10", false},
		{"disjoint after", "2026-01-06", "2026-01-10", "2026-01-01", "2026-01-05", false},
		{"interior overlap", "2026-01-01", "2026-01-07", "2026-01-05", "2026-01-10", true},
		{"contained", "2026-01-01", "2026-01-31", "2026-01-10", "2026-01-12", true},
		// One stay ends the day another starts: both ends are occupied days,
		// so a shared boundary day overlaps. No same-day turnover.
		{"shared boundary day", "2026-01-01", "2026-01-05", "2026-01-05", "2026-01-09", true},
		{"single shared day", "2026-01-05", "2026-01-05", "2026-01-05", "2026-01-05", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.RangesOverlap(d(tt.aFrom), d(tt.aTo), d(tt.bFrom), d(tt.bTo))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapDays(t *testing.T) {
	d := domain.MustParseDate

	assert.Equal(t, 0, domain.OverlapDays(d("2026-01-01"), d("2026-01-05"), d("2026-01-06"), d("2026-01-10")))
	assert.Equal(t, 1, domain.OverlapDays(d("2026-01-01"), d("2026-01-05"), d("2026-01-05"), d("2026-01-10")))
	assert.Equal(t, 3, domain.OverlapDays(d("2026-01-01"), d("2026-01-07"), d("2026-01-05"), d("2026-01-10")))
	assert.Equal(t, 31, domain.OverlapDays(d("2025-12-01"), d("2026-02-15"), d("2026-01-01"), d("2026-01-31")))
}

func TestMonthRange(t *testing.T) {
	from, to := domain.MonthRange(2026, time.February)

	assert.Equal(t, "2026-02-01", from.String())
	assert.Equal(t, "2026-02-28", to.String())

	// Leap year February.
	from, to = domain.MonthRange(2028, time.February)
	assert.Equal(t, "2028-02-01", from.String())
	assert.Equal(t, "2028-02-29", to.String())
}

func TestYearRange(t *testing.T) {
	from, to := domain.YearRange(2026)

	assert.Equal(t, "2026-01-01", from.String())
	assert.Equal(t, "2026-12-31", to.String())
}

func TestMinMaxDate(t *testing.T) {
	a := domain.MustParseDate("2026-01-05")
	b := domain.MustParseDate("2026-01-09")

	assert.True(t, domain.MinDate(a, b).Equal(a))
	assert.True(t, domain.MaxDate(a, b).Equal(b))
	assert.True(t, domain.MinDate(b, a).Equal(a))
}
