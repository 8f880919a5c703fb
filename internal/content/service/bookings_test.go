package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

func TestService_AddBooking(t *testing.T) {
	svc, _ := newTestService(t, nil)

	added, err := svc.AddBooking(context.Background(), model.BookingRange{
		Start:  "2026-09-12",
		Status: model.StatusTentative,
		Note:   "Roy wedding",
	})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.Equal(t, "2026-09-12", added.End, "single-day booking defaults end to start")

	doc, _ := svc.Document()
	ranges := doc.BookedDates()
	require.Len(t, ranges, 1)
	assert.Equal(t, added.ID, ranges[0].ID)
	assert.Equal(t, model.StatusTentative, ranges[0].Status)
	assert.Equal(t, "Roy wedding", ranges[0].Note)
}

func TestService_AddBooking_Invalid(t *testing.T) {
	svc, _ := newTestService(t, nil)

	tests := []struct {
		name    string
		booking model.BookingRange
	}{
		{"missing start", model.BookingRange{}},
		{"malformed start", model.BookingRange{Start: "12/09/2026"}},
		{"end before start", model.BookingRange{Start: "2026-09-12", End: "2026-09-10"}},
		{"bad status", model.BookingRange{Start: "2026-09-12", Status: "pencilled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddBooking(context.Background(), tt.booking)
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeValidation, apperrors.AsAppError(err).Code)
		})
	}

	doc, _ := svc.Document()
	assert.Empty(t, doc.BookedDates())
}

func TestService_RemoveBooking(t *testing.T) {
	svc, _ := newTestService(t, nil)

	first, err := svc.AddBooking(context.Background(), model.BookingRange{ID: 100, Start: "2026-09-12"})
	require.NoError(t, err)
	_, err = svc.AddBooking(context.Background(), model.BookingRange{ID: 200, Start: "2026-10-01", End: "2026-10-03"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBooking(context.Background(), first.ID))

	doc, _ := svc.Document()
	ranges := doc.BookedDates()
	require.Len(t, ranges, 1)
	assert.Equal(t, int64(200), ranges[0].ID)

	err = svc.RemoveBooking(context.Background(), first.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
}

func TestService_RemoveBooking_SurvivesSaveCycle(t *testing.T) {
	svc, st := newTestService(t, nil)

	_, err := svc.AddBooking(context.Background(), model.BookingRange{ID: 300, Start: "2026-11-20"})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, st.saved.BookedDates(), 1)

	require.NoError(t, svc.RemoveBooking(context.Background(), 300))
	_, err = svc.Save(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, st.saved.BookedDates())
}
