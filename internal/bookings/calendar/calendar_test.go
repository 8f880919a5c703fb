package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

func TestRender_GridShape(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		wantBlanks int
		wantDays   int
	}{
		// 2025-12-01 is a Monday.
		{name: "december 2025", year: 2025, month: time.December, wantBlanks: 1, wantDays: 31},
		// 2026-02-01 is a Sunday.
		{name: "february 2026", year: 2026, month: time.February, wantBlanks: 0, wantDays: 28},
		// 2024-02 is a leap February; 2024-02-01 is a Thursday.
		{name: "leap february 2024", year: 2024, month: time.February, wantBlanks: 4, wantDays: 29},
	}

	today := model.CivilDate{Year: 2020, Month: 1, Day: 1}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Render(tt.year, tt.month, nil, today)

			assert.Equal(t, tt.wantBlanks, grid.LeadingBlanks)
			assert.Len(t, grid.Cells, tt.wantDays)
			for i, cell := range grid.Cells {
				assert.Equal(t, i+1, cell.Day)
			}
		})
	}
}

func TestRender_Label(t *testing.T) {
	grid := Render(2025, time.December, nil, model.CivilDate{Year: 2025, Month: 12, Day: 1})
	assert.Equal(t, "December 2025", grid.Label)
}

func TestRender_StatesAndClickability(t *testing.T) {
	ranges := []model.BookingRange{
		{ID: 1, Start: "2025-12-10", End: "2025-12-12", Status: model.StatusBooked},
		{ID: 2, Start: "2025-12-20", End: "2025-12-20", Status: model.StatusBlocked},
		{ID: 3, Start: "2025-12-24", End: "2025-12-26", Status: model.StatusTentative},
	}
	today := model.CivilDate{Year: 2025, Month: 12, Day: 15}

	grid := Render(2025, time.December, ranges, today)
	cells := grid.Cells
	require.Len(t, cells, 31)

	// Booked range lies before today, so past wins.
	assert.Equal(t, StatePast, cells[9].State)
	assert.Equal(t, StatePast, cells[11].State)
	assert.False(t, cells[9].Clickable)

	assert.Equal(t, StateBlocked, cells[19].State)
	assert.False(t, cells[19].Clickable)

	assert.Equal(t, StateTentative, cells[23].State)
	assert.Equal(t, StateTentative, cells[25].State)

	assert.Equal(t, StateAvailable, cells[15].State)
	assert.True(t, cells[15].Clickable)
	assert.Equal(t, "2025-12-16", cells[15].Date)
}

func TestRender_TodayIsAdditive(t *testing.T) {
	today := model.CivilDate{Year: 2025, Month: 12, Day: 15}
	grid := Render(2025, time.December, nil, today)

	cell := grid.Cells[14]
	assert.True(t, cell.Today)
	assert.Equal(t, StateAvailable, cell.State, "today must not displace availability")
	assert.True(t, cell.Clickable)

	assert.False(t, grid.Cells[13].Today)
	assert.Equal(t, StatePast, grid.Cells[13].State)
}

func TestRender_TodayWithBookedStatus(t *testing.T) {
	ranges := []model.BookingRange{
		{ID: 1, Start: "2025-12-15", End: "2025-12-15", Status: model.StatusBooked},
	}
	today := model.CivilDate{Year: 2025, Month: 12, Day: 15}

	grid := Render(2025, time.December, ranges, today)
	cell := grid.Cells[14]
	assert.True(t, cell.Today)
	assert.Equal(t, StateBooked, cell.State)
	assert.False(t, cell.Clickable)
}

func TestNavigate_WrapsYearBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		delta     int
		wantYear  int
		wantMonth time.Month
	}{
		{name: "forward within year", year: 2025, month: time.March, delta: 1, wantYear: 2025, wantMonth: time.April},
		{name: "forward across year", year: 2025, month: time.December, delta: 1, wantYear: 2026, wantMonth: time.January},
		{name: "backward across year", year: 2025, month: time.January, delta: -1, wantYear: 2024, wantMonth: time.December},
		{name: "many months forward", year: 2025, month: time.November, delta: 14, wantYear: 2027, wantMonth: time.January},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := Navigate(tt.year, tt.month, tt.delta)
			assert.Equal(t, tt.wantYear, y)
			assert.Equal(t, tt.wantMonth, m)
		})
	}
}
