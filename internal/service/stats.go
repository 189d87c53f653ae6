package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/repo"
)

// MonthStats are the dashboard figures for one calendar month, prorated: a
// stay spanning a month boundary contributes only its days inside the month.
type MonthStats struct {
	Total       int64 `json:"total"`
	Collected   int64 `json:"collected"`
	Outstanding int64 `json:"outstanding"`
}

// FilterKind selects the export window granularity.
type FilterKind string

const (
	FilterDay   FilterKind = "day"
	FilterMonth FilterKind = "month"
	FilterYear  FilterKind = "year"
)

// ExportFilter describes which reservations to export: those whose inclusive
// stay range touches the requested day, month, or year.
type ExportFilter struct {
	Kind  FilterKind
	Day   domain.Date // used when Kind == FilterDay
	Month time.Month  // used when Kind == FilterMonth
	Year  int         // used when Kind == FilterMonth or FilterYear
}

// window resolves the filter to an inclusive date range.
func (f ExportFilter) window() (domain.Date, domain.Date, error) {
	switch f.Kind {
	case FilterDay:
		if f.Day.IsZero() {
			return domain.Date{}, domain.Date{}, fmt.Errorf("%w: day filter requires a date", domain.ErrValidation)
		}
		return f.Day, f.Day, nil
	case FilterMonth:
		if f.Month < time.January || f.Month > time.December {
			return domain.Date{}, domain.Date{}, fmt.Errorf("%w: month filter requires a month between 1 and 12", domain.ErrValidation)
		}
		from, to := domain.MonthRange(f.Year, f.Month)
		return from, to, nil
	case FilterYear:
		from, to := domain.YearRange(f.Year)
		return from, to, nil
	}
	return domain.Date{}, domain.Date{}, fmt.Errorf("%w: unknown filter kind %q", domain.ErrValidation, f.Kind)
}

// StatsService rolls settlement figures up across a month or an arbitrary
// export filter. Like every read side here, it works by scanning the full
// reservation listing and filtering in memory.
type StatsService struct {
	repo repo.ReservationRepo
}

// NewStatsService constructs a StatsService backed by the provided
// ReservationRepo.
func NewStatsService(r repo.ReservationRepo) *StatsService {
	return &StatsService{repo: r}
}

// MonthStats computes the prorated dashboard totals for one calendar month.
//
// Attribution counts occupied days inside the month (inclusive of both stay
// ends, matching the availability semantics): a stay from Jan 28 to Feb 3 at
// 1000/night puts 4×1000 into January and 3×1000 into February. Collected and
// outstanding are split by the reservation's payment ratio, so a fully paid
// stay contributes zero outstanding to every month it touches.
func (s *StatsService) MonthStats(ctx context.Context, year int, month time.Month) (MonthStats, error) {
	const op = "service.StatsService.MonthStats"

	if month < time.January || month > time.December {
		return MonthStats{}, fmt.Errorf("%s: %w: month must be between 1 and 12", op, domain.ErrValidation)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return MonthStats{}, fmt.Errorf("%s: %w", op, err)
	}

	monthStart, monthEnd := domain.MonthRange(year, month)

	var stats MonthStats
	for _, res := range all {
		days := domain.ProratedNights(res.CheckinDate, res.CheckoutDate, monthStart, monthEnd)
		if days == 0 {
			continue
		}

		settled := res.Settlement()
		total := res.NightlyRate() * int64(days)
		collected := domain.ProrateAmount(total, settled.Paid, settled.TotalPrice)

		stats.Total += total
		stats.Collected += collected
		stats.Outstanding += total - collected
	}

	return stats, nil
}

// ExportRows returns one settlement row per reservation whose stay touches
// the filter window, sorted by checkin date, plus the collected/outstanding
// sums for the trailing TOTAL row. Rows carry full-stay figures — export is
// reservation detail, not calendar-month accounting, so no proration here.
func (s *StatsService) ExportRows(ctx context.Context, f ExportFilter) ([]domain.ExportRow, domain.ExportTotals, error) {
	const op = "service.StatsService.ExportRows"

	from, to, err := f.window()
	if err != nil {
		return nil, domain.ExportTotals{}, fmt.Errorf("%s: %w", op, err)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.ExportTotals{}, fmt.Errorf("%s: %w", op, err)
	}

	matched := make([]domain.Reservation, 0, len(all))
	for _, res := range all {
		if res.OverlapsRange(from, to) {
			matched = append(matched, res)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CheckinDate.Equal(matched[j].CheckinDate) {
			return matched[i].CheckinDate.Before(matched[j].CheckinDate)
		}
		return matched[i].GuestName < matched[j].GuestName
	})

	rows := make([]domain.ExportRow, 0, len(matched))
	var totals domain.ExportTotals
	for _, res := range matched {
		settled := res.Settlement()
		rows = append(rows, domain.ExportRow{
			CheckinDMY:  res.CheckinDate.DMY(),
			GuestName:   res.GuestName,
			RoomNumbers: strings.Join(res.RoomNumbers(), ", "),
			Status:      settled.Status,
			Collected:   settled.Paid,
			Outstanding: settled.Outstanding,
		})
		totals.Collected += settled.Paid
		totals.Outstanding += settled.Outstanding
	}

	return rows, totals, nil
}
