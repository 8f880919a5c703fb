package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/calendar"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type stubContent struct {
	doc model.Document
	err error
}

func (s *stubContent) Document() (model.Document, error) {
	return s.doc, s.err
}

func fixedToday(date string) func() model.CivilDate {
	return func() model.CivilDate {
		d, _ := model.ParseCivilDate(date)
		return d
	}
}

func docWithBookings() model.Document {
	return model.Document{
		"bookings": map[string]any{
			"bookedDates": []any{
				map[string]any{"id": float64(1), "start": "2025-12-24", "end": "2025-12-26", "status": "booked"},
				map[string]any{"id": float64(2), "start": "2025-12-31", "end": "2025-12-31", "status": "tentative"},
			},
		},
	}
}

func newTestService(doc model.Document, today string) *Service {
	s := NewService(&stubContent{doc: doc}, logger.Discard())
	s.now = fixedToday(today)
	return s
}

func TestService_Month(t *testing.T) {
	s := newTestService(docWithBookings(), "2025-12-20")

	grid, err := s.Month(2025, time.December)
	require.NoError(t, err)
	assert.Equal(t, "December 2025", grid.Label)
	require.Len(t, grid.Cells, 31)

	assert.Equal(t, calendar.StatePast, grid.Cells[18].State)
	assert.Equal(t, calendar.StateBooked, grid.Cells[24].State)
	assert.Equal(t, calendar.StateTentative, grid.Cells[30].State)
	assert.Equal(t, calendar.StateAvailable, grid.Cells[21].State)
	assert.True(t, grid.Cells[19].Today)
}

func TestService_Month_InvalidMonth(t *testing.T) {
	s := newTestService(nil, "2025-12-20")

	_, err := s.Month(2025, 13)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
}

func TestService_Day(t *testing.T) {
	s := newTestService(docWithBookings(), "2025-12-20")

	tests := []struct {
		date      string
		state     calendar.CellState
		available bool
	}{
		{"2025-12-10", calendar.StatePast, false},
		{"2025-12-24", calendar.StateBooked, false},
		{"2025-12-26", calendar.StateBooked, false},
		{"2025-12-27", calendar.StateAvailable, true},
		{"2025-12-31", calendar.StateTentative, false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			status, err := s.Day(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.state, status.State)
			assert.Equal(t, tt.available, status.Available)
		})
	}
}

func TestService_Day_Today(t *testing.T) {
	s := newTestService(docWithBookings(), "2025-12-20")

	status, err := s.Day("2025-12-20")
	require.NoError(t, err)
	assert.True(t, status.Today)
	assert.True(t, status.Available)
}

func TestService_Day_BadDate(t *testing.T) {
	s := newTestService(nil, "2025-12-20")

	_, err := s.Day("24/12/2025")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
}
