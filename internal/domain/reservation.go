package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how the guest paid (or will pay).
type PaymentMethod string

const (
	PayCash     PaymentMethod = "Cash"
	PayTransfer PaymentMethod = "Transfer"
	PayCard     PaymentMethod = "Card"
)

// ValidPaymentMethod reports whether m is one of the known methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PayCash, PayTransfer, PayCard:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of a reservation.
//
// It is stored denormalized next to AmountPaid and TotalPrice, and every
// mutation path recomputes it through Settle — with one exception: an
// explicit "mark as paid" stores StatusPaid even when AmountPaid is below
// TotalPrice, and settlement then reconciles the paid amount up to the total.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "Pending"
	StatusPartial PaymentStatus = "Partial"
	StatusPaid    PaymentStatus = "Paid"
)

// RoomStay is the denormalized snapshot of one booked room: the number, type,
// and nightly price captured at booking time. Later catalog price changes
// never alter historical reservations.
type RoomStay struct {
	Number       string   `json:"number"`
	Type         RoomType `json:"type"`
	NightlyPrice int64    `json:"nightly_price"`
}

// Reservation is the central aggregate: one guest holding one or more rooms
// for an inclusive range of calendar days.
//
// A reservation occupies every day d with CheckinDate <= d <= CheckoutDate,
// both ends included. That is the availability rule; the billed night count
// is CheckoutDate - CheckinDate floored at 1 (see Nights).
//
// Revision is a monotonic per-record version. Updates must supply the
// revision they read; the store rejects stale writes with ErrStaleWrite.
type Reservation struct {
	ID            uuid.UUID     `json:"id"`
	GuestName     string        `json:"guest_name"`
	Rooms         []RoomStay    `json:"rooms"`
	CheckinDate   Date          `json:"checkin_date"`
	CheckoutDate  Date          `json:"checkout_date"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	AmountPaid    int64         `json:"amount_paid"`
	TotalPrice    int64         `json:"total_price"`
	Revision      int64         `json:"-"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Occupies reports whether the reservation holds its rooms on day d.
func (r Reservation) Occupies(d Date) bool {
	return !d.Before(r.CheckinDate) && !d.After(r.CheckoutDate)
}

// OverlapsRange reports whether the reservation's inclusive stay range shares
// at least one day with [from, to].
func (r Reservation) OverlapsRange(from, to Date) bool {
	return RangesOverlap(r.CheckinDate, r.CheckoutDate, from, to)
}

// HasRoom reports whether the reservation includes the given room number.
func (r Reservation) HasRoom(number string) bool {
	for _, stay := range r.Rooms {
		if stay.Number == number {
			return true
		}
	}
	return false
}

// RoomNumbers returns the booked room numbers in booking order.
func (r Reservation) RoomNumbers() []string {
	out := make([]string, len(r.Rooms))
	for i, stay := range r.Rooms {
		out[i] = stay.Number
	}
	return out
}

// NightlyRate returns the combined nightly price of all booked rooms.
func (r Reservation) NightlyRate() int64 {
	var sum int64
	for _, stay := range r.Rooms {
		sum += stay.NightlyPrice
	}
	return sum
}

// Settlement computes the reservation's canonical settlement figures from its
// stored source fields. The stored StatusPaid acts as the explicit
// mark-as-paid override.
func (r Reservation) Settlement() Settlement {
	return Settle(r.Rooms, r.CheckinDate, r.CheckoutDate, r.AmountPaid, r.PaymentStatus == StatusPaid)
}
