package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/calendar"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/service"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type stubContent struct {
	doc model.Document
}

func (s *stubContent) Document() (model.Document, error) {
	return s.doc, nil
}

func newTestHandler() *BookingHandler {
	doc := model.Document{
		"bookings": map[string]any{
			"bookedDates": []any{
				map[string]any{"id": float64(1), "start": "2030-06-10", "end": "2030-06-12", "status": "booked"},
			},
		},
	}
	svc := service.NewService(&stubContent{doc: doc}, logger.Discard())
	return NewBookingHandler(svc, logger.Discard())
}

type gridResponse struct {
	Data calendar.Grid `json:"data"`
}

func TestGetCalendar(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?year=2030&month=6", nil)
	h.GetCalendar(w, req, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp gridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "June 2030", resp.Data.Label)
	require.Len(t, resp.Data.Cells, 30)
	assert.Equal(t, calendar.StateBooked, resp.Data.Cells[9].State)
	assert.Equal(t, calendar.StateBooked, resp.Data.Cells[11].State)
	assert.Equal(t, calendar.StateAvailable, resp.Data.Cells[12].State)
}

func TestGetCalendar_Delta(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar?year=2030&month=12&delta=1", nil)
	h.GetCalendar(w, req, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp gridResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2031, resp.Data.Year)
	assert.Equal(t, 1, resp.Data.Month)
}

func TestGetCalendar_BadQuery(t *testing.T) {
	h := newTestHandler()

	tests := []string{
		"/api/v1/calendar?year=twenty",
		"/api/v1/calendar?year=2030&month=june",
		"/api/v1/calendar?year=2030&month=6&delta=next",
		"/api/v1/calendar?year=2030&month=13",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.GetCalendar(w, httptest.NewRequest(http.MethodGet, url, nil), nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetDay(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/2030-06-11", nil)
	h.GetDay(w, req, httprouter.Params{{Key: "date", Value: "2030-06-11"}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data service.DayStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, calendar.StateBooked, resp.Data.State)
	assert.False(t, resp.Data.Available)
}

func TestGetDay_BadDate(t *testing.T) {
	h := newTestHandler()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/june-11", nil)
	h.GetDay(w, req, httprouter.Params{{Key: "date", Value: "june-11"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
