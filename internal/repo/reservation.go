// Package repo contains all persistence access for the front-desk API.
// Reservations live in one flat document collection: a single table keyed by
// reservation id holding the whole record as a JSONB doc plus a monotonic
// revision. There are no secondary indexes — every date-range or month query
// is a full-collection scan filtered in memory by the service layer.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sethvargo/go-retry"

	"github.com/ItachiRD26/hotelgil/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReservationRepo defines the persistence operations for reservations.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the services to be unit-tested with a mock.
type ReservationRepo interface {
	// Create inserts a new reservation document under the id already assigned
	// by the caller and returns the persisted record (revision and timestamps
	// populated).
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// GetByID retrieves a single reservation by id.
	// Returns domain.ErrNotFound if no reservation with that id exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)

	// List returns every reservation in the collection, oldest first.
	// This full scan is the only read primitive the store offers; callers
	// filter in memory.
	List(ctx context.Context) ([]domain.Reservation, error)

	// Update overwrites the document of an existing reservation, conditional
	// on res.Revision matching the stored revision. Returns the updated
	// record with the bumped revision, domain.ErrStaleWrite when another
	// write landed first, or domain.ErrNotFound when the id is gone.
	Update(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// Delete removes a reservation by id. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

// reservationDoc is the JSON document stored in the doc column. The id,
// revision, and timestamps live in their own columns and are not duplicated
// inside the document.
type reservationDoc struct {
	GuestName     string               `json:"guest_name"`
	Rooms         []domain.RoomStay    `json:"rooms"`
	CheckinDate   domain.Date          `json:"checkin_date"`
	CheckoutDate  domain.Date          `json:"checkout_date"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	AmountPaid    int64                `json:"amount_paid"`
	TotalPrice    int64                `json:"total_price"`
}

// Create inserts a new reservation document and returns the persisted record.
func (r *pgReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (id, doc)
		VALUES (@id, @doc)
		RETURNING id, doc, revision, created_at, updated_at`

	doc, err := json.Marshal(encodeDoc(res))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: marshal doc: %w", err)
	}

	var result domain.Reservation
	err = withRetry(ctx, func() error {
		row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": res.ID, "doc": doc})
		result, err = scanReservation(row)
		return err
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a reservation by primary key.
func (r *pgReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const q = `
		SELECT id, doc, revision, created_at, updated_at
		FROM reservations
		WHERE id = @id`

	var result domain.Reservation
	err := withRetry(ctx, func() error {
		row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
		var err error
		result, err = scanReservation(row)
		return err
	})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns the full collection, oldest first.
func (r *pgReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	const q = `
		SELECT id, doc, revision, created_at, updated_at
		FROM reservations
		ORDER BY created_at`

	var out []domain.Reservation
	err := withRetry(ctx, func() error {
		rows, err := r.db.Query(ctx, q)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = out[:0]
		for rows.Next() {
			res, err := scanReservation(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			out = append(out, res)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.List: %w", err)
	}

	return out, nil
}

// Update overwrites the reservation document, conditional on the revision the
// caller read. The revision bump is what turns last-write-wins into an
// explicit stale-write failure for concurrent editors.
func (r *pgReservationRepo) Update(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		UPDATE reservations
		SET doc        = @doc,
		    revision   = revision + 1,
		    updated_at = now()
		WHERE id = @id AND revision = @revision
		RETURNING id, doc, revision, created_at, updated_at`

	doc, err := json.Marshal(encodeDoc(res))
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: marshal doc: %w", err)
	}

	args := pgx.NamedArgs{"id": res.ID, "doc": doc, "revision": res.Revision}

	var result domain.Reservation
	err = withRetry(ctx, func() error {
		row := r.db.QueryRow(ctx, q, args)
		var err error
		result, err = scanReservation(row)
		return err
	})
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: %w", err)
	}

	// No row matched id+revision. Tell a vanished record apart from a write
	// that lost the race.
	if _, getErr := r.GetByID(ctx, res.ID); getErr == nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: %w", domain.ErrStaleWrite)
	}
	return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes a reservation by primary key.
func (r *pgReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE id = @id`

	var tag pgconn.CommandTag
	err := withRetry(ctx, func() error {
		var err error
		tag, err = r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
		return err
	})
	if err != nil {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// withRetry runs op with capped fibonacci backoff. Only errors pgx reports as
// safe to retry are retried — those are failures where the write definitely
// never reached the server, so a retry can not double-apply. Anything else
// (including "write may have partially applied") surfaces immediately.
func withRetry(ctx context.Context, op func() error) error {
	b := retry.WithMaxRetries(3, retry.NewFibonacci(50*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := op()
		if err != nil && pgconn.SafeToRetry(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanReservation
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanReservation maps a database row into a domain.Reservation, decoding the
// JSONB document and the id/revision/timestamp columns.
func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res     domain.Reservation
		id      pgtype.UUID
		rawDoc  []byte
		created time.Time
		updated time.Time
	)

	err := s.Scan(&id, &rawDoc, &res.Revision, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}

	var doc reservationDoc
	if err := json.Unmarshal(rawDoc, &doc); err != nil {
		return domain.Reservation{}, fmt.Errorf("unmarshal doc: %w", err)
	}

	res.ID = uuid.UUID(id.Bytes)
	res.CreatedAt = created
	res.UpdatedAt = updated
	doc.apply(&res)

	return res, nil
}

// encodeDoc strips a reservation down to the stored document fields.
func encodeDoc(res domain.Reservation) reservationDoc {
	return reservationDoc{
		GuestName:     res.GuestName,
		Rooms:         res.Rooms,
		CheckinDate:   res.CheckinDate,
		CheckoutDate:  res.CheckoutDate,
		PaymentMethod: res.PaymentMethod,
		PaymentStatus: res.PaymentStatus,
		AmountPaid:    res.AmountPaid,
		TotalPrice:    res.TotalPrice,
	}
}

// apply copies the document fields onto a reservation whose column-backed
// fields are already set.
func (d reservationDoc) apply(res *domain.Reservation) {
	res.GuestName = d.GuestName
	res.Rooms = d.Rooms
	res.CheckinDate = d.CheckinDate
	res.CheckoutDate = d.CheckoutDate
	res.PaymentMethod = d.PaymentMethod
	res.PaymentStatus = d.PaymentStatus
	res.AmountPaid = d.AmountPaid
	res.TotalPrice = d.TotalPrice
}
