// Package service answers availability questions against the live content
// document: month grids for the calendar widget and point lookups for a
// single day.
package service

import (
	"time"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/calendar"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/engine"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// ContentSource yields an isolated copy of the current document.
type ContentSource interface {
	Document() (model.Document, error)
}

// DayStatus is the availability answer for one calendar day.
type DayStatus struct {
	Date      string             `json:"date"`
	State     calendar.CellState `json:"state"`
	Today     bool               `json:"today"`
	Available bool               `json:"available"`
}

type Service struct {
	content ContentSource
	log     *logger.Logger

	// now is swapped in tests to pin the calendar.
	now func() model.CivilDate
}

func NewService(content ContentSource, log *logger.Logger) *Service {
	return &Service{
		content: content,
		log:     log,
		now:     model.Today,
	}
}

// Month renders the availability grid for the given month.
func (s *Service) Month(year int, month time.Month) (calendar.Grid, error) {
	if month < time.January || month > time.December {
		return calendar.Grid{}, apperrors.InvalidInput("month must be between 1 and 12")
	}

	doc, err := s.content.Document()
	if err != nil {
		return calendar.Grid{}, err
	}

	return calendar.Render(year, month, doc.BookedDates(), s.now()), nil
}

// Day resolves the state of one date the same way the grid does, so a
// point query and the rendered calendar can never disagree.
func (s *Service) Day(date string) (DayStatus, error) {
	d, err := model.ParseCivilDate(date)
	if err != nil {
		return DayStatus{}, apperrors.InvalidInput("date must be a YYYY-MM-DD calendar date")
	}

	doc, err := s.content.Document()
	if err != nil {
		return DayStatus{}, err
	}

	today := s.now()
	state := calendar.StateAvailable
	if d.Before(today) {
		state = calendar.StatePast
	} else if status, matched := engine.StatusOf(doc.BookedDates(), d); matched {
		switch status {
		case model.StatusBlocked:
			state = calendar.StateBlocked
		case model.StatusTentative:
			state = calendar.StateTentative
		default:
			state = calendar.StateBooked
		}
	}

	return DayStatus{
		Date:      d.String(),
		State:     state,
		Today:     d.Equal(today),
		Available: state == calendar.StateAvailable,
	}, nil
}
