// Package service contains the business logic for the front-desk API.
// Services validate inputs, enforce the booking invariants, and orchestrate
// repo calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/repo"
)

// Window is the contiguous occupied sub-range observed for one room within a
// query window, inclusive of both ends.
type Window struct {
	From domain.Date `json:"from"`
	To   domain.Date `json:"to"`
}

// AvailabilityService answers "which rooms are busy when" questions. It owns
// the per-day occupancy fold every booking and calendar view relies on.
type AvailabilityService struct {
	repo repo.ReservationRepo
}

// NewAvailabilityService constructs an AvailabilityService backed by the
// provided ReservationRepo.
func NewAvailabilityService(r repo.ReservationRepo) *AvailabilityService {
	return &AvailabilityService{repo: r}
}

// Occupancy returns, for every room occupied at some point inside
// [from, to], the min/max occupied day observed within that window. The
// window is clipped: a reservation running past the query range contributes
// only the days that fall inside it, unless its full span lies within.
// Rooms with no intersecting reservation are absent from the map (available).
func (s *AvailabilityService) Occupancy(ctx context.Context, from, to domain.Date) (map[string]Window, error) {
	if to.Before(from) {
		from, to = to, from
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.Occupancy: %w", err)
	}

	occupied := make(map[string]Window)
	for _, res := range all {
		if !res.OverlapsRange(from, to) {
			continue
		}
		// Clip the stay to the query window before folding.
		lo := domain.MaxDate(res.CheckinDate, from)
		hi := domain.MinDate(res.CheckoutDate, to)
		for _, number := range res.RoomNumbers() {
			w, seen := occupied[number]
			if !seen {
				occupied[number] = Window{From: lo, To: hi}
				continue
			}
			w.From = domain.MinDate(w.From, lo)
			w.To = domain.MaxDate(w.To, hi)
			occupied[number] = w
		}
	}

	return occupied, nil
}

// CheckRoomsFree verifies that none of the requested rooms is held by another
// reservation on any day of the inclusive range [checkin, checkout]. exclude
// skips one reservation id — pass the id being edited so a reservation never
// conflicts with itself, or uuid.Nil for a create.
//
// A checkout day equal to another reservation's checkin day for the same room
// is a conflict: both ends of a stay count as occupied, there is no same-day
// turnover.
func (s *AvailabilityService) CheckRoomsFree(ctx context.Context, roomNumbers []string, checkin, checkout domain.Date, exclude uuid.UUID) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("service.AvailabilityService.CheckRoomsFree: %w", err)
	}

	for _, res := range all {
		if res.ID == exclude {
			continue
		}
		if !res.OverlapsRange(checkin, checkout) {
			continue
		}
		for _, number := range roomNumbers {
			if res.HasRoom(number) {
				return fmt.Errorf("service.AvailabilityService.CheckRoomsFree: %w: room %s is occupied %s – %s",
					domain.ErrConflict, number, res.CheckinDate.DMY(), res.CheckoutDate.DMY())
			}
		}
	}
	return nil
}
