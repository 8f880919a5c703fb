// Package engine answers one question: what is the booking status of a
// calendar day given the stored date ranges. It knows nothing about "now";
// past-day classification belongs to the caller.
package engine

import (
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// StatusOf returns the status covering date, or ok=false when no range
// matches (the day is available). A range matches when
// start <= date <= end on calendar-day tuples. When ranges overlap the
// first match in array order wins; overlaps are a data-entry anomaly the
// editor does not prevent and this engine does not reconcile. A matched
// range with an empty status reports booked.
func StatusOf(ranges []model.BookingRange, date model.CivilDate) (model.BookingStatus, bool) {
	for _, r := range ranges {
		start, err := model.ParseCivilDate(r.Start)
		if err != nil {
			continue
		}
		end, err := model.ParseCivilDate(r.EffectiveEnd())
		if err != nil {
			continue
		}

		if date.Before(start) || date.After(end) {
			continue
		}

		if r.Status == "" {
			return model.StatusBooked, true
		}
		return r.Status, true
	}
	return "", false
}
