package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name string, items []domain.CartItem) error {
	var lines strings.Builder
	for _, item := range items {
		fmt.Fprintf(&lines, "  - %s: %s to %s\n",
			item.Name, item.StartAt.Format("Mon Jan 2"), item.EndAt.Format("Mon Jan 2"))
	}
	body := fmt.Sprintf("Hello %s,\n\nYour gear is booked:\n\n%s\nPayment is due in person at pickup.\n\nSee you outside,\nThe Outers Club", name, lines.String())
	return s.send(email, name, "Your gear booking is confirmed", body)
}

func (s *emailService) SendCancellationNotice(ctx context.Context, email, name, gearName string, start time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking of %s starting %s has been cancelled.\n\nSee you outside,\nThe Outers Club",
		name, gearName, start.Format("Mon Jan 2"))
	return s.send(email, name, "Booking cancelled", body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, name, gearName string, start time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nReminder: your booking of %s starts %s. Pick it up at the gear room during office hours.\n\nSee you outside,\nThe Outers Club",
		name, gearName, start.Format("Mon Jan 2 15:04"))
	return s.send(email, name, "Gear pickup reminder", body)
}
