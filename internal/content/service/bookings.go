package service

import (
	"context"
	"errors"

	bookingvalidator "github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/validator"
	contenterrors "github.com/North-East-dev/gunash-bibha-bhaban/internal/content/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/content/events"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

// AddBooking validates a new range and appends it to the working copy. A
// missing id gets one from the session clock and a missing end collapses to
// the single-day form; everything else must already be valid.
func (s *Service) AddBooking(ctx context.Context, b model.BookingRange) (model.BookingRange, error) {
	if b.ID == 0 {
		b.ID = model.NewBookingID()
	}
	if b.End == "" {
		b.End = b.Start
	}

	if err := s.validator.Validate(&b); err != nil {
		var verrs bookingvalidator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make(map[string]any, len(verrs))
			for _, ve := range verrs {
				details[ve.Field] = ve.Message
			}
			return model.BookingRange{}, apperrors.Validation("booking range is invalid", details)
		}
		return model.BookingRange{}, apperrors.Internal("booking validation failed", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return model.BookingRange{}, contenterrors.ErrNoSession
	}

	arr, _ := s.working.Array(model.PathBookedDates)
	if err := s.working.Set(model.PathBookedDates, append(arr, b.ToMap())); err != nil {
		return model.BookingRange{}, apperrors.Internal("failed to append booking", err)
	}

	s.events.Publish(ctx, events.EventBookingAdded, map[string]any{
		"id":    b.ID,
		"start": b.Start,
		"end":   b.End,
	})
	status := b.Status
	if status == "" {
		status = model.StatusBooked
	}
	s.activity.Record("Added %s booking %s to %s", status, b.Start, b.End)
	return b, nil
}

// RemoveBooking deletes a range by id.
func (s *Service) RemoveBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.working == nil {
		return contenterrors.ErrNoSession
	}

	arr, _ := s.working.Array(model.PathBookedDates)
	idx := -1
	for i, raw := range arr {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if numericID(entry) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.NotFound("booking")
	}

	filtered := append(append([]any{}, arr[:idx]...), arr[idx+1:]...)
	if err := s.working.Set(model.PathBookedDates, filtered); err != nil {
		return apperrors.Internal("failed to remove booking", err)
	}

	s.events.Publish(ctx, events.EventBookingRemoved, map[string]any{"id": id})
	s.activity.Record("Removed booking %d", id)
	return nil
}

func numericID(entry map[string]any) int64 {
	switch id := entry["id"].(type) {
	case float64:
		return int64(id)
	case int64:
		return id
	case int:
		return int64(id)
	default:
		return 0
	}
}
