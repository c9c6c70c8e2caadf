package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type successResponse struct {
	Success    bool    `json:"success"`
	BookingIDs []int32 `json:"booking_ids,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeBusinessError maps the reservation engine's error taxonomy onto HTTP
// statuses. Anything unrecognized is an infrastructure failure: it has been
// logged with identifiers upstream and the member gets a generic message.
func writeBusinessError(w http.ResponseWriter, err error) {
	var (
		validationErr  *domain.ValidationError
		overlapErr     *domain.MemberOverlapError
		unavailableErr *domain.ItemUnavailableError
	)
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrEmptyCart), errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoMembership), errors.Is(err, domain.ErrMembershipInvalid),
		errors.Is(err, domain.ErrNotBookingOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &overlapErr), errors.As(err, &unavailableErr),
		errors.Is(err, domain.ErrAlreadyReturned), errors.Is(err, domain.ErrAlreadyStarted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "something went wrong, please try again")
	}
}
