package http

import (
	"net/http"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/config"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/security"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Catalog reads are public; everything
// touching bookings requires a session token, and mutating routes are
// rate limited per IP.
func NewRouter(
	cfg *config.Config,
	tm security.TokenManager,
	reservations service.ReservationService,
	gear service.GearService,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)

	api := r.PathPrefix("/api").Subrouter()

	gearHandler := NewGearHandler(gear)
	api.HandleFunc("/gear", gearHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/gear/{id:[0-9]+}", gearHandler.HandleGet).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(Auth(tm))

	bookingHandler := NewBookingHandler(reservations)
	authed.HandleFunc("/bookings", bookingHandler.HandleList).Methods(http.MethodGet)

	limited := authed.NewRoute().Subrouter()
	limited.Use(RateLimit(cfg.Rental.RateLimitPerMinute, cfg.Rental.RateLimitBurst))

	checkoutHandler := NewCheckoutHandler(reservations)
	limited.HandleFunc("/checkout", checkoutHandler.HandleCheckout).Methods(http.MethodPost)
	limited.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookingHandler.HandleCancel).Methods(http.MethodPost)

	return r
}
