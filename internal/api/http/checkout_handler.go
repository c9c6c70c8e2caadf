package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/service"
)

type CheckoutHandler struct {
	reservations service.ReservationService
}

func NewCheckoutHandler(reservations service.ReservationService) *CheckoutHandler {
	return &CheckoutHandler{reservations: reservations}
}

type checkoutItem struct {
	GearID     int32     `json:"gear_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	RentalType string    `json:"rental_type"`
	PriceCents int32     `json:"price_cents"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items"`
}

func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	memberID, ok := MemberFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	cart := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		cart = append(cart, domain.CartItem{
			GearID:     item.GearID,
			Name:       item.Name,
			Category:   item.Category,
			StartAt:    item.Start,
			EndAt:      item.End,
			RentalType: domain.RentalType(item.RentalType),
			PriceCents: item.PriceCents,
		})
	}

	bookingIDs, err := h.reservations.Checkout(r.Context(), memberID, cart)
	if err != nil {
		if isInfrastructureError(err) {
			logger.Error("checkout failed", "member_id", memberID, "error", err)
		}
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, BookingIDs: bookingIDs})
}

// isInfrastructureError reports whether err is outside the business
// taxonomy and deserves an error-level log entry.
func isInfrastructureError(err error) bool {
	var (
		validationErr  *domain.ValidationError
		overlapErr     *domain.MemberOverlapError
		unavailableErr *domain.ItemUnavailableError
	)
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrNoMembership),
		errors.Is(err, domain.ErrMembershipInvalid),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrNotBookingOwner),
		errors.Is(err, domain.ErrAlreadyReturned),
		errors.Is(err, domain.ErrAlreadyStarted),
		errors.As(err, &validationErr),
		errors.As(err, &overlapErr),
		errors.As(err, &unavailableErr):
		return false
	}
	return true
}
