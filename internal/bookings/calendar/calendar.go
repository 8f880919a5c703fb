// Package calendar projects booking ranges onto a month grid for the
// public availability view. Each render is a full recompute; the grid is
// cheap and month navigation is infrequent.
package calendar

import (
	"fmt"
	"time"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/engine"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type CellState string

const (
	StatePast      CellState = "past"
	StateBooked    CellState = "booked"
	StateBlocked   CellState = "blocked"
	StateTentative CellState = "tentative"
	StateAvailable CellState = "available"
)

// Cell is one day of the month. Today is an additive decoration, not a
// state: a day can be both today and available. Only available cells are
// click-enabled for booking inquiries.
type Cell struct {
	Day       int       `json:"day"`
	Date      string    `json:"date"`
	State     CellState `json:"state"`
	Today     bool      `json:"today"`
	Clickable bool      `json:"clickable"`
}

type Grid struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Label         string `json:"label"`
	LeadingBlanks int    `json:"leading_blanks"`
	Cells         []Cell `json:"cells"`
}

// Navigate applies a month delta, wrapping year boundaries through
// time.Date's month-overflow normalization.
func Navigate(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// Render builds the grid for one month. Leading blanks equal the weekday
// index of the first day (0 = Sunday); days before today render as past
// regardless of booking status.
func Render(year int, month time.Month, ranges []model.BookingRange, today model.CivilDate) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leadingBlanks := int(first.Weekday())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := Grid{
		Year:          year,
		Month:         int(month),
		Label:         fmt.Sprintf("%s %d", month, year),
		LeadingBlanks: leadingBlanks,
		Cells:         make([]Cell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := model.CivilDate{Year: year, Month: int(month), Day: day}

		state := StateAvailable
		if date.Before(today) {
			state = StatePast
		} else if status, matched := engine.StatusOf(ranges, date); matched {
			state = stateOf(status)
		}

		grid.Cells = append(grid.Cells, Cell{
			Day:       day,
			Date:      date.String(),
			State:     state,
			Today:     date.Equal(today),
			Clickable: state == StateAvailable,
		})
	}

	return grid
}

func stateOf(status model.BookingStatus) CellState {
	switch status {
	case model.StatusBlocked:
		return StateBlocked
	case model.StatusTentative:
		return StateTentative
	default:
		return StateBooked
	}
}
