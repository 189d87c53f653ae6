package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// reservation does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing guest name, checkout before checkin).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a requested room is already occupied for an
// overlapping date range. The wrapping error names the room and its occupied
// window so the front desk can explain the rejection.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("availability conflict")

// ErrStaleWrite is returned by the repo when an update supplies a revision
// older than the one currently stored — another staff member saved first.
// Handlers should map this to HTTP 412 Precondition Failed.
var ErrStaleWrite = errors.New("stale write")
