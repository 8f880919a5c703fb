// Package handler serves the public availability endpoints consumed by the
// booking calendar widget.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/calendar"
	"github.com/North-East-dev/gunash-bibha-bhaban/internal/bookings/service"
	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/httputil"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
)

type BookingHandler struct {
	service *service.Service
	log     *logger.Logger
}

func NewBookingHandler(svc *service.Service, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: svc, log: log}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/calendar", h.GetCalendar)
	router.GET("/api/v1/availability/:date", h.GetDay)
}

// GetCalendar renders the month grid. Without year and month it shows the
// current month; an optional delta shifts by whole months so the widget's
// previous/next arrows need no date arithmetic of their own.
func (h *BookingHandler) GetCalendar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, "GetCalendar", apperrors.InvalidInput("year must be numeric"))
			return
		}
		year = parsed
	}
	if raw := query.Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, "GetCalendar", apperrors.InvalidInput("month must be numeric"))
			return
		}
		month = time.Month(parsed)
	}
	if raw := query.Get("delta"); raw != "" {
		delta, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, "GetCalendar", apperrors.InvalidInput("delta must be numeric"))
			return
		}
		year, month = calendar.Navigate(year, month, delta)
	}

	grid, err := h.service.Month(year, month)
	if err != nil {
		h.writeError(w, "GetCalendar", err)
		return
	}

	if err := httputil.WriteSuccess(w, grid); err != nil {
		h.log.Error("failed to write success response", "handler", "GetCalendar", "error", err)
	}
}

func (h *BookingHandler) GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	status, err := h.service.Day(ps.ByName("date"))
	if err != nil {
		h.writeError(w, "GetDay", err)
		return
	}

	if err := httputil.WriteSuccess(w, status); err != nil {
		h.log.Error("failed to write success response", "handler", "GetDay", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}
