package http

import (
	"net/http"
	"strconv"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/service"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	reservations service.ReservationService
}

func NewBookingHandler(reservations service.ReservationService) *BookingHandler {
	return &BookingHandler{reservations: reservations}
}

func (h *BookingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	bookings, err := h.reservations.ListBookings(r.Context(), memberID)
	if err != nil {
		logger.Error("failed to list bookings", "member_id", memberID, "error", err)
		writeBusinessError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := h.reservations.Cancel(r.Context(), memberID, int32(id)); err != nil {
		if isInfrastructureError(err) {
			logger.Error("cancellation failed", "member_id", memberID, "booking_id", id, "error", err)
		}
		writeBusinessError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
