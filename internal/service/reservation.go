package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/repo"
)

// CreateReservationInput carries a booking form submission.
// MarkPaid records an explicit "paid in full" choice at the desk; when set,
// AmountPaid is ignored and the full total is registered as collected.
type CreateReservationInput struct {
	GuestName     string
	RoomNumbers   []string
	CheckinDate   domain.Date
	CheckoutDate  domain.Date
	PaymentMethod domain.PaymentMethod
	AmountPaid    int64
	MarkPaid      bool
}

// UpdateReservationInput carries a partial edit. Nil fields are left as they
// are. Changing rooms or dates re-derives the total and re-runs the same
// conflict check as create; changing the amount re-derives the status.
type UpdateReservationInput struct {
	GuestName     *string
	RoomNumbers   []string
	CheckinDate   *domain.Date
	CheckoutDate  *domain.Date
	PaymentMethod *domain.PaymentMethod
	AmountPaid    *int64
}

// ReservationService is the reservation lifecycle manager. It enforces the
// two core invariants on every mutation path: no two reservations may hold
// the same room on the same day, and the stored payment status always matches
// the stored amounts (save for the explicit mark-as-paid override).
type ReservationService struct {
	repo         repo.ReservationRepo
	catalog      *domain.Catalog
	availability *AvailabilityService
}

// NewReservationService constructs a ReservationService.
func NewReservationService(r repo.ReservationRepo, catalog *domain.Catalog, availability *AvailabilityService) *ReservationService {
	return &ReservationService{repo: r, catalog: catalog, availability: availability}
}

// Create validates, revalidates availability against freshly fetched data,
// derives the settlement, and persists a new reservation.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (domain.Reservation, error) {
	const op = "service.ReservationService.Create"

	if err := s.validateFields(op, in.GuestName, in.CheckinDate, in.CheckoutDate, in.PaymentMethod, in.AmountPaid); err != nil {
		return domain.Reservation{}, err
	}
	stays, err := s.snapshotRooms(op, in.RoomNumbers)
	if err != nil {
		return domain.Reservation{}, err
	}

	// Conflict check runs against the store, not whatever the form cached.
	if err := s.availability.CheckRoomsFree(ctx, in.RoomNumbers, in.CheckinDate, in.CheckoutDate, uuid.Nil); err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	settled := domain.Settle(stays, in.CheckinDate, in.CheckoutDate, in.AmountPaid, in.MarkPaid)

	res := domain.Reservation{
		ID:            uuid.New(),
		GuestName:     strings.TrimSpace(in.GuestName),
		Rooms:         stays,
		CheckinDate:   in.CheckinDate,
		CheckoutDate:  in.CheckoutDate,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: settled.Status,
		AmountPaid:    settled.Paid,
		TotalPrice:    settled.TotalPrice,
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// GetByID returns a single reservation by id.
func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.GetByID: %w", err)
	}
	return res, nil
}

// ListByDate returns every reservation occupying the given calendar day.
func (s *ReservationService) ListByDate(ctx context.Context, day domain.Date) ([]domain.Reservation, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.ListByDate: %w", err)
	}

	out := make([]domain.Reservation, 0)
	for _, res := range all {
		if res.Occupies(day) {
			out = append(out, res)
		}
	}
	return out, nil
}

// Update merges the submitted fields into the stored reservation, re-derives
// the dependent fields, and persists conditional on the revision read here.
func (s *ReservationService) Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput) (domain.Reservation, error) {
	const op = "service.ReservationService.Update"

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	stayChanged := false
	amountChanged := false

	if in.GuestName != nil {
		res.GuestName = strings.TrimSpace(*in.GuestName)
	}
	if in.RoomNumbers != nil {
		stayChanged = true
	}
	if in.CheckinDate != nil {
		res.CheckinDate = *in.CheckinDate
		stayChanged = true
	}
	if in.CheckoutDate != nil {
		res.CheckoutDate = *in.CheckoutDate
		stayChanged = true
	}
	if in.PaymentMethod != nil {
		res.PaymentMethod = *in.PaymentMethod
	}
	if in.AmountPaid != nil {
		res.AmountPaid = *in.AmountPaid
		amountChanged = true
	}

	if err := s.validateFields(op, res.GuestName, res.CheckinDate, res.CheckoutDate, res.PaymentMethod, res.AmountPaid); err != nil {
		return domain.Reservation{}, err
	}

	// New rooms are snapshotted at today's catalog prices; untouched rooms
	// keep their price-at-booking snapshot.
	if in.RoomNumbers != nil {
		stays, err := s.snapshotRooms(op, in.RoomNumbers)
		if err != nil {
			return domain.Reservation{}, err
		}
		res.Rooms = stays
	}
	roomNumbers := res.RoomNumbers()

	// Moving a stay must clear the same bar as booking it. The reservation
	// being edited is excluded so it never conflicts with itself.
	if stayChanged {
		if err := s.availability.CheckRoomsFree(ctx, roomNumbers, res.CheckinDate, res.CheckoutDate, res.ID); err != nil {
			return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	// An explicit amount entry always wins over a previous mark-as-paid;
	// otherwise a marked-paid reservation stays reconciled at the new total.
	markedPaid := res.PaymentStatus == domain.StatusPaid && !amountChanged

	settled := domain.Settle(res.Rooms, res.CheckinDate, res.CheckoutDate, res.AmountPaid, markedPaid)
	res.TotalPrice = settled.TotalPrice
	res.PaymentStatus = settled.Status
	if !markedPaid {
		res.AmountPaid = settled.Paid
	}

	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// MarkPaid forces the reservation to Paid. The stored amount is left
// untouched so RevertToPartial can restore the last recorded partial payment.
// Marking an already-paid reservation is a no-op.
func (s *ReservationService) MarkPaid(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const op = "service.ReservationService.MarkPaid"

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	if res.PaymentStatus == domain.StatusPaid {
		return res, nil
	}

	res.PaymentStatus = domain.StatusPaid
	res.TotalPrice = res.Settlement().TotalPrice

	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// RevertToPartial undoes a mark-as-paid: the status is re-derived from the
// preserved partial amount, so the earlier payment is not lost.
func (s *ReservationService) RevertToPartial(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const op = "service.ReservationService.RevertToPartial"

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}

	settled := domain.Settle(res.Rooms, res.CheckinDate, res.CheckoutDate, res.AmountPaid, false)
	res.PaymentStatus = settled.Status
	res.AmountPaid = settled.Paid
	res.TotalPrice = settled.TotalPrice

	updated, err := s.repo.Update(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Delete removes a reservation permanently. There is no soft delete.
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ReservationService.Delete: %w", err)
	}
	return nil
}

// validateFields applies the shared validation rules for creates and merged
// updates.
func (s *ReservationService) validateFields(op, guestName string, checkin, checkout domain.Date, method domain.PaymentMethod, amountPaid int64) error {
	if strings.TrimSpace(guestName) == "" {
		return fmt.Errorf("%s: %w: guest name is required", op, domain.ErrValidation)
	}
	if checkin.IsZero() || checkout.IsZero() {
		return fmt.Errorf("%s: %w: checkin and checkout dates are required", op, domain.ErrValidation)
	}
	if checkout.Before(checkin) {
		return fmt.Errorf("%s: %w: checkout date is before checkin date", op, domain.ErrValidation)
	}
	if !domain.ValidPaymentMethod(method) {
		return fmt.Errorf("%s: %w: unknown payment method %q", op, domain.ErrValidation, method)
	}
	if amountPaid < 0 {
		return fmt.Errorf("%s: %w: amount paid must not be negative", op, domain.ErrValidation)
	}
	return nil
}

// snapshotRooms copies number, type, and current nightly price for each
// requested room out of the catalog. The copies become part of the
// reservation; later catalog price changes never touch them.
func (s *ReservationService) snapshotRooms(op string, roomNumbers []string) ([]domain.RoomStay, error) {
	if len(roomNumbers) == 0 {
		return nil, fmt.Errorf("%s: %w: select at least one room", op, domain.ErrValidation)
	}

	stays := make([]domain.RoomStay, 0, len(roomNumbers))
	seen := make(map[string]bool, len(roomNumbers))
	for _, number := range roomNumbers {
		if seen[number] {
			return nil, fmt.Errorf("%s: %w: room %s listed twice", op, domain.ErrValidation, number)
		}
		seen[number] = true

		room, ok := s.catalog.ByNumber(number)
		if !ok {
			return nil, fmt.Errorf("%s: %w: unknown room %s", op, domain.ErrValidation, number)
		}
		stays = append(stays, domain.RoomStay{
			Number:       room.Number,
			Type:         room.Type,
			NightlyPrice: room.NightlyPrice,
		})
	}
	return stays, nil
}
