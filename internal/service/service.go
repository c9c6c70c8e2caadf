package service

import (
	"context"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
)

type MembershipService interface {
	// Status looks up exactly one membership record. It is read-only and
	// reports NoRecord and Invalid separately so callers can tell a
	// prospective member to register rather than to renew.
	Status(ctx context.Context, memberID int32) (domain.MembershipStatus, error)
}

type ReservationService interface {
	// Checkout books every item in the cart or none of them. It returns
	// the new booking ids in cart order.
	Checkout(ctx context.Context, memberID int32, cart []domain.CartItem) ([]int32, error)
	// Cancel removes a future, not-yet-returned booking owned by the
	// caller and reverses the gear item's usage statistics.
	Cancel(ctx context.Context, memberID, bookingID int32) error
	ListBookings(ctx context.Context, memberID int32) ([]domain.Booking, error)
}

type GearService interface {
	GetGear(ctx context.Context, id int32) (*domain.GearItem, error)
	ListGear(ctx context.Context, category string) ([]domain.GearItem, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name string, items []domain.CartItem) error
	SendCancellationNotice(ctx context.Context, email, name, gearName string, start time.Time) error
	SendPickupReminder(ctx context.Context, email, name, gearName string, start time.Time) error
}
