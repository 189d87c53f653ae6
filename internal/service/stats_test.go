package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/service"
)

func TestStatsService_MonthStats_Empty(t *testing.T) {
	svc := service.NewStatsService(echoRepo())

	got, err := svc.MonthStats(context.Background(), 2026, time.January)

	require.NoError(t, err)
	assert.Equal(t, service.MonthStats{}, got)
}

func TestStatsService_MonthStats_InvalidMonth(t *testing.T) {
	svc := service.NewStatsService(echoRepo())

	_, err := svc.MonthStats(context.Background(), 2026, time.Month(13))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsService_MonthStats_FullyInsideMonth(t *testing.T) {
	res := existingReservation("101", "2026-01-10", "2026-01-12") // 3 occupied days
	res.AmountPaid = 3000
	res.PaymentStatus = domain.StatusPaid
	svc := service.NewStatsService(echoRepo(res))

	got, err := svc.MonthStats(context.Background(), 2026, time.January)

	require.NoError(t, err)
	assert.Equal(t, int64(4500), got.Total) // 3 days × 1500
	assert.Equal(t, int64(4500), got.Collected)
	assert.Equal(t, int64(0), got.Outstanding)
}

func TestStatsService_MonthStats_ProratesAcrossBoundary(t *testing.T) {
	// Jan 28 – Feb 3 at 1500/day: 4 occupied days in January, 3 in February.
	res := existingReservation("101", "2026-01-28", "2026-02-03")
	res.AmountPaid = 0
	svc := service.NewStatsService(echoRepo(res))

	jan, err := svc.MonthStats(context.Background(), 2026, time.January)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), jan.Total)
	assert.Equal(t, int64(6000), jan.Outstanding)

	feb, err := svc.MonthStats(context.Background(), 2026, time.February)
	require.NoError(t, err)
	assert.Equal(t, int64(4500), feb.Total)

	mar, err := svc.MonthStats(context.Background(), 2026, time.March)
	require.NoError(t, err)
	assert.Equal(t, int64(0), mar.Total)
}

func TestStatsService_MonthStats_PaidStayHasNoOutstanding(t *testing.T) {
	// A marked-paid stay contributes zero outstanding to every month it
	// touches, even though the stored amount is below the total.
	res := existingReservation("101", "2026-01-28", "2026-02-03")
	res.AmountPaid = 1000
	res.PaymentStatus = domain.StatusPaid
	svc := service.NewStatsService(echoRepo(res))

	jan, err := svc.MonthStats(context.Background(), 2026, time.January)

	require.NoError(t, err)
	assert.Equal(t, int64(6000), jan.Total)
	assert.Equal(t, int64(6000), jan.Collected)
	assert.Equal(t, int64(0), jan.Outstanding)
}

func TestStatsService_MonthStats_SplitsByPaymentRatio(t *testing.T) {
	res := existingReservation("101", "2026-01-10", "2026-01-12")
	res.AmountPaid = 2250 // 75% of the 3000 total (2 billed nights × 1500)
	svc := service.NewStatsService(echoRepo(res))

	got, err := svc.MonthStats(context.Background(), 2026, time.January)

	require.NoError(t, err)
	// 3 occupied days × 1500 = 4500 attributed; 2250/3000 of it collected.
	assert.Equal(t, int64(4500), got.Total)
	assert.Equal(t, int64(3375), got.Collected)
	assert.Equal(t, int64(1125), got.Outstanding)
}

// ---- ExportRows tests ------------------------------------------------------

func TestStatsService_ExportRows_MonthFilter(t *testing.T) {
	jan := existingReservation("101", "2026-01-10", "2026-01-12")
	jan.AmountPaid = 1000
	jan.PaymentStatus = domain.StatusPartial
	jan.GuestName = "Ana"
	feb := existingReservation("102", "2026-02-10", "2026-02-12")
	feb.GuestName = "Berto"
	straddle := existingReservation("103", "2026-01-30", "2026-02-02")
	straddle.GuestName = "Carla"
	svc := service.NewStatsService(echoRepo(feb, straddle, jan))

	rows, totals, err := svc.ExportRows(context.Background(), service.ExportFilter{
		Kind: service.FilterMonth, Year: 2026, Month: time.January,
	})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Sorted by checkin date; full-stay figures, not prorated.
	assert.Equal(t, "Ana", rows[0].GuestName)
	assert.Equal(t, "10/01/2026", rows[0].CheckinDMY)
	assert.Equal(t, int64(1000), rows[0].Collected)
	assert.Equal(t, int64(2000), rows[0].Outstanding)
	assert.Equal(t, "Carla", rows[1].GuestName)

	assert.Equal(t, int64(1000), totals.Collected)
	assert.Equal(t, rows[0].Outstanding+rows[1].Outstanding, totals.Outstanding)
}

func TestStatsService_ExportRows_DayFilter(t *testing.T) {
	res := existingReservation("101", "2026-01-10", "2026-01-12")
	svc := service.NewStatsService(echoRepo(res))

	rows, _, err := svc.ExportRows(context.Background(), service.ExportFilter{
		Kind: service.FilterDay, Day: domain.MustParseDate("2026-01-12"),
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1) // checkout day still counts

	rows, _, err = svc.ExportRows(context.Background(), service.ExportFilter{
		Kind: service.FilterDay, Day: domain.MustParseDate("2026-01-13"),
	})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStatsService_ExportRows_YearFilter(t *testing.T) {
	in2026 := existingReservation("101", "2026-06-01", "2026-06-03")
	in2025 := existingReservation("102", "2025-06-01", "2025-06-03")
	svc := service.NewStatsService(echoRepo(in2026, in2025))

	rows, _, err := svc.ExportRows(context.Background(), service.ExportFilter{
		Kind: service.FilterYear, Year: 2026,
	})

	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestStatsService_ExportRows_MultiRoomJoined(t *testing.T) {
	res := existingReservation("101", "2026-01-10", "2026-01-12")
	res.Rooms = append(res.Rooms, domain.RoomStay{Number: "201", Type: domain.RoomDouble, NightlyPrice: 2500})
	svc := service.NewStatsService(echoRepo(res))

	rows, _, err := svc.ExportRows(context.Background(), service.ExportFilter{
		Kind: service.FilterYear, Year: 2026,
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "101, 201", rows[0].RoomNumbers)
}

func TestStatsService_ExportRows_InvalidFilter(t *testing.T) {
	svc := service.NewStatsService(echoRepo())

	_, _, err := svc.ExportRows(context.Background(), service.ExportFilter{Kind: "week"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.ExportRows(context.Background(), service.ExportFilter{Kind: service.FilterDay})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.ExportRows(context.Background(), service.ExportFilter{Kind: service.FilterMonth, Year: 2026, Month: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
