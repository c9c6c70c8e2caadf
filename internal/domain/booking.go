package domain

import "time"

// Booking is a persisted reservation of one gear item for a half-open range
// [StartAt, EndAt). Returned moves false→true exactly once, outside the
// reservation engine; the engine only ever creates bookings and deletes
// future, not-yet-returned ones. PriceCents is a snapshot of the cart price
// so a cancellation can reverse the revenue aggregate by the same amount.
type Booking struct {
	ID         int32     `json:"id"`
	MemberID   int32     `json:"member_id"`
	GearID     int32     `json:"gear_id"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	Returned   bool      `json:"returned"`
	UnitID     *int32    `json:"unit_id,omitempty"`
	PriceCents int32     `json:"price_cents"`
	CreatedOn  time.Time `json:"created_on"`
}

// CartItem is one requested booking inside a checkout. It exists only for
// the duration of the request and is never persisted as-is.
type CartItem struct {
	GearID     int32      `json:"gear_id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	StartAt    time.Time  `json:"start"`
	EndAt      time.Time  `json:"end"`
	RentalType RentalType `json:"rental_type"`
	PriceCents int32      `json:"price_cents"`
}
