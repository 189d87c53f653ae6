package domain

// Settlement is the computed money state of a stay: billed nights, total
// price, amount collected, amount outstanding, and the canonical payment
// status. It is always derived — never stored — by Settle.
type Settlement struct {
	Nights      int           `json:"nights"`
	TotalPrice  int64         `json:"total_price"`
	Paid        int64         `json:"paid"`
	Outstanding int64         `json:"outstanding"`
	Status      PaymentStatus `json:"status"`
}

// Nights returns the billed night count for a stay: checkout minus checkin in
// days, floored at 1. A same-day (or inverted) checkin/checkout bills one
// night; the floor is deliberate, not an error.
func Nights(checkin, checkout Date) int {
	n := checkin.DaysUntil(checkout)
	if n < 1 {
		return 1
	}
	return n
}

// DerivePaymentStatus computes the canonical status from amounts:
// Paid when paid covers the total, Pending when nothing is paid,
// Partial in between.
func DerivePaymentStatus(paid, total int64) PaymentStatus {
	switch {
	case paid >= total:
		return StatusPaid
	case paid > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}

// Settle computes the settlement for a set of booked rooms over an inclusive
// stay range. It is pure: no I/O, fully determined by its inputs.
//
// markedPaid carries an explicit "mark as paid" decision: when set, the paid
// amount is reconciled up to the full total regardless of a possibly stale
// amountPaid, so marking paid always zeroes the outstanding balance.
// Otherwise paid is clamped to the total — an over-entered amount never
// registers beyond what is owed.
func Settle(rooms []RoomStay, checkin, checkout Date, amountPaid int64, markedPaid bool) Settlement {
	nights := Nights(checkin, checkout)

	var total int64
	for _, stay := range rooms {
		total += stay.NightlyPrice * int64(nights)
	}

	paid := amountPaid
	if paid < 0 {
		paid = 0
	}
	if markedPaid || paid > total {
		paid = total
	}

	outstanding := total - paid
	if outstanding < 0 {
		outstanding = 0
	}

	status := DerivePaymentStatus(paid, total)
	if markedPaid {
		status = StatusPaid
	}

	return Settlement{
		Nights:      nights,
		TotalPrice:  total,
		Paid:        paid,
		Outstanding: outstanding,
		Status:      status,
	}
}

// ProratedNights returns the number of occupied days of [checkin, checkout]
// that fall inside [windowFrom, windowTo], counting both ends of each range.
// This is the month-attribution rule for dashboard statistics: a stay from
// Jan 28 to Feb 3 contributes 4 days to January (28..31) and 3 to February
// (1..3), mirroring the inclusive occupancy semantics rather than the billed
// night count.
func ProratedNights(checkin, checkout, windowFrom, windowTo Date) int {
	return OverlapDays(checkin, checkout, windowFrom, windowTo)
}

// ProrateAmount splits amount by the ratio part/whole using integer
// arithmetic. whole <= 0 yields 0.
func ProrateAmount(amount, part, whole int64) int64 {
	if whole <= 0 {
		return 0
	}
	return amount * part / whole
}
