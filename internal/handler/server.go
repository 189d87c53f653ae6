// Package handler implements the HTTP handlers for the front-desk API.
// All handlers are methods on Server; routing is plain chi with hand-written
// JSON encoding. Methods are split into domain-specific files (health.go,
// reservation.go, etc.) but all share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ItachiRD26/hotelgil/internal/auth"
	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/service"
)

// ReservationServicer defines the reservation operations the handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ReservationServicer interface {
	Create(ctx context.Context, in service.CreateReservationInput) (domain.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	ListByDate(ctx context.Context, day domain.Date) ([]domain.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, in service.UpdateReservationInput) (domain.Reservation, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	RevertToPartial(ctx context.Context, id uuid.UUID) (domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityServicer answers room occupancy queries.
type AvailabilityServicer interface {
	Occupancy(ctx context.Context, from, to domain.Date) (map[string]service.Window, error)
}

// StatsServicer computes the dashboard and export figures.
type StatsServicer interface {
	MonthStats(ctx context.Context, year int, month time.Month) (service.MonthStats, error)
	ExportRows(ctx context.Context, f service.ExportFilter) ([]domain.ExportRow, domain.ExportTotals, error)
}

// LoginProvider verifies the staff credential and issues a session token.
type LoginProvider interface {
	Login(email, password string) (auth.Token, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods live in domain-specific files but all operate on this struct.
type Server struct {
	reservations ReservationServicer
	availability AvailabilityServicer
	stats        StatsServicer
	login        LoginProvider
	rooms        *domain.Catalog
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	reservations ReservationServicer,
	availability AvailabilityServicer,
	stats StatsServicer,
	login LoginProvider,
	rooms *domain.Catalog,
) *Server {
	return &Server{
		reservations: reservations,
		availability: availability,
		stats:        stats,
		login:        login,
		rooms:        rooms,
	}
}

// Routes mounts every endpoint on a fresh chi router. authGate wraps the
// admin routes; the health check, the room catalog, and login stay public.
func (s *Server) Routes(authGate func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/rooms", s.ListRooms)
		r.Post("/login", s.PostLogin)

		r.Group(func(r chi.Router) {
			r.Use(authGate)

			r.Route("/reservations", func(r chi.Router) {
				r.Get("/", s.ListReservations)
				r.Post("/", s.CreateReservation)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.GetReservation)
					r.Put("/", s.UpdateReservation)
					r.Delete("/", s.DeleteReservation)
					r.Post("/mark-paid", s.MarkReservationPaid)
					r.Post("/revert-partial", s.RevertReservationToPartial)
				})
			})

			r.Get("/availability", s.GetAvailability)
			r.Get("/stats", s.GetStats)
			r.Get("/export", s.GetExport)
		})
	})

	return r
}
