// Package availability holds the pure rules that decide whether gear can be
// handed out for a requested date range.
package availability

import (
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
)

// DefaultTurnoverBuffer is subtracted from an existing booking's end when
// testing for conflicts: gear due back on day D comes in during the morning
// and can go out again later the same day.
const DefaultTurnoverBuffer = 24 * time.Hour

// Overlaps reports whether a requested range [reqStart, reqEnd) conflicts
// with an existing booking [exStart, exEnd).
//
// The buffer shrinks the existing booking's effective end and nothing else.
// That asymmetry is intentional: a request starting inside the existing
// booking's final turnover window is fine (the gear is already back), but
// the requested range itself is needed in full, so its own end is never
// shortened. Swapping which range is "requested" can change the answer for
// ranges that meet inside the buffer.
func Overlaps(reqStart, reqEnd, exStart, exEnd time.Time, buffer time.Duration) bool {
	return reqStart.Before(exEnd.Add(-buffer)) && reqEnd.After(exStart)
}

// CountConflicts returns how many of the given bookings conflict with the
// requested range. Linear in the number of bookings.
func CountConflicts(reqStart, reqEnd time.Time, bookings []domain.Booking, buffer time.Duration) int {
	n := 0
	for _, b := range bookings {
		if Overlaps(reqStart, reqEnd, b.StartAt, b.EndAt, buffer) {
			n++
		}
	}
	return n
}

// HasCapacity reports whether at least one of capacity units is free over
// the requested range, given every existing booking of the item.
func HasCapacity(reqStart, reqEnd time.Time, bookings []domain.Booking, capacity int32, buffer time.Duration) bool {
	return int32(CountConflicts(reqStart, reqEnd, bookings, buffer)) < capacity
}
