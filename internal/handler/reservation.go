package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/service"
)

// createReservationRequest is the POST /api/reservations body.
// Dates are "YYYY-MM-DD". amount_paid is in whole pesos. mark_paid records an
// explicit "paid in full" at booking time, overriding amount_paid.
type createReservationRequest struct {
	GuestName     string               `json:"guest_name"`
	RoomNumbers   []string             `json:"room_numbers"`
	CheckinDate   domain.Date          `json:"checkin_date"`
	CheckoutDate  domain.Date          `json:"checkout_date"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	AmountPaid    int64                `json:"amount_paid"`
	MarkPaid      bool                 `json:"mark_paid"`
}

// updateReservationRequest is the PUT /api/reservations/{id} body.
// Every field is optional; absent fields keep their stored value.
type updateReservationRequest struct {
	GuestName     *string               `json:"guest_name"`
	RoomNumbers   []string              `json:"room_numbers"`
	CheckinDate   *domain.Date          `json:"checkin_date"`
	CheckoutDate  *domain.Date          `json:"checkout_date"`
	PaymentMethod *domain.PaymentMethod `json:"payment_method"`
	AmountPaid    *int64                `json:"amount_paid"`
}

// CreateReservation handles POST /api/reservations.
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body must be valid JSON: "+err.Error())
		return
	}

	created, err := s.reservations.Create(r.Context(), service.CreateReservationInput{
		GuestName:     req.GuestName,
		RoomNumbers:   req.RoomNumbers,
		CheckinDate:   req.CheckinDate,
		CheckoutDate:  req.CheckoutDate,
		PaymentMethod: req.PaymentMethod,
		AmountPaid:    req.AmountPaid,
		MarkPaid:      req.MarkPaid,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// ListReservations handles GET /api/reservations?date=YYYY-MM-DD.
// It returns every reservation occupying the given calendar day — the day
// view of the desk calendar.
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		requestError(w, "query parameter date is required (YYYY-MM-DD)")
		return
	}
	day, err := domain.ParseDate(raw)
	if err != nil {
		requestError(w, "invalid date "+raw+", expected YYYY-MM-DD")
		return
	}

	reservations, err := s.reservations.ListByDate(r.Context(), day)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, reservations)
}

// GetReservation handles GET /api/reservations/{id}.
func (s *Server) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	res, err := s.reservations.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// UpdateReservation handles PUT /api/reservations/{id}.
func (s *Server) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestError(w, "request body must be valid JSON: "+err.Error())
		return
	}

	updated, err := s.reservations.Update(r.Context(), id, service.UpdateReservationInput{
		GuestName:     req.GuestName,
		RoomNumbers:   req.RoomNumbers,
		CheckinDate:   req.CheckinDate,
		CheckoutDate:  req.CheckoutDate,
		PaymentMethod: req.PaymentMethod,
		AmountPaid:    req.AmountPaid,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DeleteReservation handles DELETE /api/reservations/{id}.
func (s *Server) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	if err := s.reservations.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkReservationPaid handles POST /api/reservations/{id}/mark-paid.
func (s *Server) MarkReservationPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	res, err := s.reservations.MarkPaid(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// RevertReservationToPartial handles POST /api/reservations/{id}/revert-partial.
func (s *Server) RevertReservationToPartial(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	res, err := s.reservations.RevertToPartial(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// reservationID parses the {id} path parameter. On failure it writes the 422
// itself and reports false.
func reservationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		requestError(w, "invalid reservation id")
		return uuid.Nil, false
	}
	return id, true
}
