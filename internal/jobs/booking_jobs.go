package jobs

import (
	"context"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
)

// MarkReturnedBookings flips the returned flag on bookings whose range has
// fully elapsed. The flag only ever moves false→true; gear-room staff flip
// it earlier when a member brings gear back before the end date.
func (jr *JobRunner) MarkReturnedBookings() {
	jr.runWithRecovery("MarkReturnedBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET returned = TRUE
			WHERE returned = FALSE
			  AND end_at < $1
			RETURNING id, member_id, gear_id, end_at
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			logger.Error("Failed to mark returned bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id, memberID, gearID int32
				endAt                time.Time
			)
			if err := rows.Scan(&id, &memberID, &gearID, &endAt); err != nil {
				logger.Error("Failed to scan returned booking", "error", err)
				continue
			}
			count++
			logger.Debug("Marked booking as returned",
				"booking_id", id, "member_id", memberID, "gear_id", gearID, "end_at", endAt)
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating returned bookings", "error", err)
			return
		}

		logger.Info("Marked bookings as returned", "count", count)
	})
}

// SendPickupReminders emails members whose bookings start within the next
// day so the gear room sees fewer no-shows.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		if jr.emailSvc == nil {
			logger.Warn("Email service not configured, skipping pickup reminders")
			return
		}

		ctx := context.Background()

		query := `
			SELECT b.id, b.start_at, m.email, m.name, g.name
			FROM bookings b
			JOIN members m ON m.id = b.member_id
			JOIN gear_items g ON g.id = b.gear_id
			WHERE b.returned = FALSE
			  AND b.start_at >= $1
			  AND b.start_at < $2
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to load upcoming bookings", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var (
				bookingID         int32
				startAt           time.Time
				email, name, gear string
			)
			if err := rows.Scan(&bookingID, &startAt, &email, &name, &gear); err != nil {
				logger.Error("Failed to scan upcoming booking", "error", err)
				continue
			}
			if err := jr.emailSvc.SendPickupReminder(ctx, email, name, gear, startAt); err != nil {
				logger.Error("Failed to send pickup reminder",
					"booking_id", bookingID, "error", err)
				continue
			}
			sent++
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming bookings", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", sent)
	})
}
