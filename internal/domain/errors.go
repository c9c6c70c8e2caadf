package domain

import (
	"errors"
	"fmt"
	"time"
)

// Business outcomes of checkout and cancellation. These are expected results
// returned to the caller, never panics; only infrastructure failures travel
// as unwrapped driver errors.
var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoMembership      = errors.New("no membership record on file")
	ErrMembershipInvalid = errors.New("membership is not active")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotBookingOwner   = errors.New("booking belongs to another member")
	ErrAlreadyReturned   = errors.New("booking has already been returned")
	ErrAlreadyStarted    = errors.New("booking has already started")
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MemberOverlapError reports that a requested range collides with one of the
// member's existing active bookings. The check is deliberately cross-item: a
// member holds one rental slot at a time, whatever the gear.
type MemberOverlapError struct {
	GearID   int32
	GearName string
	Start    time.Time
	End      time.Time
}

func (e *MemberOverlapError) Error() string {
	return fmt.Sprintf("%s (%s to %s) overlaps one of your existing rentals",
		e.GearName, e.Start.Format("Jan 2"), e.End.Format("Jan 2"))
}

// ItemUnavailableError reports that every unit of a gear item is already
// booked over the requested range.
type ItemUnavailableError struct {
	GearID   int32
	GearName string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s is not available for the selected dates", e.GearName)
}
