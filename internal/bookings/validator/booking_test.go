package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

func TestBookingValidator_Validate(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	tests := []struct {
		name      string
		booking   model.BookingRange
		wantError bool
		wantField string
	}{
		{
			name:    "valid range",
			booking: model.BookingRange{ID: 1, Start: "2025-12-24", End: "2025-12-26", Status: model.StatusBooked},
		},
		{
			name:    "single day without end",
			booking: model.BookingRange{ID: 2, Start: "2025-12-24"},
		},
		{
			name:    "empty status allowed",
			booking: model.BookingRange{ID: 3, Start: "2025-12-24", End: "2025-12-24"},
		},
		{
			name:      "missing start",
			booking:   model.BookingRange{ID: 4},
			wantError: true,
			wantField: "Start",
		},
		{
			name:      "unpadded start",
			booking:   model.BookingRange{ID: 5, Start: "2025-1-05"},
			wantError: true,
			wantField: "Start",
		},
		{
			name:      "impossible date",
			booking:   model.BookingRange{ID: 6, Start: "2025-02-30"},
			wantError: true,
			wantField: "Start",
		},
		{
			name:      "malformed end",
			booking:   model.BookingRange{ID: 7, Start: "2025-12-24", End: "christmas"},
			wantError: true,
			wantField: "End",
		},
		{
			name:      "end before start",
			booking:   model.BookingRange{ID: 8, Start: "2025-12-26", End: "2025-12-24"},
			wantError: true,
			wantField: "End",
		},
		{
			name:      "unknown status",
			booking:   model.BookingRange{ID: 9, Start: "2025-12-24", Status: "maybe"},
			wantError: true,
			wantField: "Status",
		},
		{
			name:      "missing id",
			booking:   model.BookingRange{Start: "2025-12-24"},
			wantError: true,
			wantField: "ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.booking)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			verrs, ok := err.(ValidationErrors)
			require.True(t, ok, "expected ValidationErrors, got %T", err)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}

func TestBookingValidator_ErrorMessage(t *testing.T) {
	v := NewBookingValidator(logger.Discard())

	err := v.Validate(&model.BookingRange{ID: 1, Start: "not-a-date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}
