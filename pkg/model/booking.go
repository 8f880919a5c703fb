package model

import "time"

type BookingStatus string

// The exact wire values. An empty status on a stored range is read as
// booked.
const (
	StatusBooked    BookingStatus = "booked"
	StatusBlocked   BookingStatus = "blocked"
	StatusTentative BookingStatus = "tentative"
)

// BookingRange is a date interval with an availability status. End defaults
// to Start for single-day entries; End >= Start is enforced at entry time,
// never silently corrected.
type BookingRange struct {
	ID     int64         `json:"id" validate:"required"`
	Start  string        `json:"start" validate:"required,calendardate"`
	End    string        `json:"end,omitempty" validate:"omitempty,calendardate"`
	Status BookingStatus `json:"status,omitempty" validate:"omitempty,oneof=booked blocked tentative"`
	Note   string        `json:"note,omitempty"`
}

// NewBookingID derives a numeric booking id the same way the item ids get
// their prefix: from the session clock.
func NewBookingID() int64 {
	return time.Now().UnixMilli()
}

// EffectiveEnd is End, or Start when no end was stored.
func (b BookingRange) EffectiveEnd() string {
	if b.End == "" {
		return b.Start
	}
	return b.End
}

// ToMap renders the range in document form so the stored JSON stays a plain
// tree.
func (b BookingRange) ToMap() map[string]any {
	m := map[string]any{
		"id":    b.ID,
		"start": b.Start,
		"end":   b.EffectiveEnd(),
	}
	if b.Status != "" {
		m["status"] = string(b.Status)
	}
	if b.Note != "" {
		m["note"] = b.Note
	}
	return m
}

// BookedDates decodes bookings.bookedDates, tolerating malformed entries by
// skipping anything that is not a mapping.
func (d Document) BookedDates() []BookingRange {
	arr, ok := d.Array(PathBookedDates)
	if !ok {
		return nil
	}

	ranges := make([]BookingRange, 0, len(arr))
	for _, raw := range arr {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		ranges = append(ranges, bookingFromMap(m))
	}
	return ranges
}

func bookingFromMap(m map[string]any) BookingRange {
	var b BookingRange
	switch id := m["id"].(type) {
	case float64:
		b.ID = int64(id)
	case int64:
		b.ID = id
	case int:
		b.ID = int64(id)
	}
	b.Start, _ = m["start"].(string)
	b.End, _ = m["end"].(string)
	if s, ok := m["status"].(string); ok {
		b.Status = BookingStatus(s)
	}
	b.Note, _ = m["note"].(string)
	return b
}
