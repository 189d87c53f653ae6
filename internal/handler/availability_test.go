package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItachiRD26/hotelgil/internal/domain"
	"github.com/ItachiRD26/hotelgil/internal/service"
)

func TestGetAvailability_200(t *testing.T) {
	avail := &mockAvailabilityServicer{
		occupancy: func(_ context.Context, from, to domain.Date) (map[string]service.Window, error) {
			assert.Equal(t, "2026-01-01", from.String())
			assert.Equal(t, "2026-01-31", to.String())
			return map[string]service.Window{
				"101": {From: domain.MustParseDate("2026-01-05"), To: domain.MustParseDate("2026-01-08")},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/availability?from=2026-01-01&to=2026-01-31", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(deps{availability: avail}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Rooms []struct {
			Room      domain.Room     `json:"room"`
			Available bool            `json:"available"`
			Occupied  *service.Window `json:"occupied"`
		} `json:"rooms"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	// One entry per catalog room, busy or not.
	require.Len(t, resp.Rooms, 7)

	byNumber := map[string]bool{}
	for _, entry := range resp.Rooms {
		byNumber[entry.Room.Number] = entry.Available
		if entry.Room.Number == "101" {
			require.NotNil(t, entry.Occupied)
			assert.Equal(t, "2026-01-05", entry.Occupied.From.String())
			assert.Equal(t, "2026-01-08", entry.Occupied.To.String())
		} else {
			assert.Nil(t, entry.Occupied)
		}
	}
	assert.False(t, byNumber["101"])
	assert.True(t, byNumber["301"])
}

func TestGetAvailability_SwapsInvertedRange(t *testing.T) {
	avail := &mockAvailabilityServicer{
		occupancy: func(_ context.Context, from, to domain.Date) (map[string]service.Window, error) {
			// The handler normalizes before calling the service.
			assert.True(t, !to.Before(from))
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/availability?from=2026-01-31&to=2026-01-01", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(deps{availability: avail}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAvailability_422_MissingParams(t *testing.T) {
	for _, target := range []string{
		"/api/availability",
		"/api/availability?from=2026-01-01",
		"/api/availability?from=2026-01-01&to=31/01/2026",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		newHTTPHandler(deps{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "target %s", target)
	}
}
