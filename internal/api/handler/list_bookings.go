package handler

import (
	"errors"
	"net/http"

	"hoteldesk/internal/domain"

	"github.com/sirupsen/logrus"
)

type ListBookingsResponse struct {
	Items []domain.Booking `json:"items"`
}

// ListBookings godoc
// @Summary List bookings
// @Description Bookings from the hotel backend; query parameters are passed through as filters
// @Tags Bookings
// @Produce json
// @Param status query string false "Booking status filter"
// @Param guest_id query string false "Guest filter"
// @Param room_id query string false "Room filter"
// @Success 200 {object} ListBookingsResponse
// @Failure 401 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /bookings [get]
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	bookings, err := h.bookings.ListBookings(r.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "backend rejected credentials")
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListBookings"}).Error("bookings listing failed")
		writeError(w, http.StatusBadGateway, "failed to list bookings")
		return
	}

	writeJSON(w, http.StatusOK, ListBookingsResponse{Items: bookings})
}
