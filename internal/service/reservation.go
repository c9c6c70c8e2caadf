package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/availability"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/logger"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type reservationService struct {
	store       repository.Transactor
	memberRepo  repository.MemberRepository
	gearRepo    repository.GearRepository
	bookingRepo repository.BookingRepository
	membership  MembershipService
	emailSvc    EmailService
	buffer      time.Duration
	now         func() time.Time
}

func NewReservationService(
	store repository.Transactor,
	memberRepo repository.MemberRepository,
	gearRepo repository.GearRepository,
	bookingRepo repository.BookingRepository,
	membership MembershipService,
	emailSvc EmailService,
	buffer time.Duration,
) ReservationService {
	if buffer <= 0 {
		buffer = availability.DefaultTurnoverBuffer
	}
	return &reservationService{
		store:       store,
		memberRepo:  memberRepo,
		gearRepo:    gearRepo,
		bookingRepo: bookingRepo,
		membership:  membership,
		emailSvc:    emailSvc,
		buffer:      buffer,
		now:         time.Now,
	}
}

// Checkout books the whole cart or nothing. The checks and writes run in
// one serializable transaction with each gear row locked during its
// capacity check, so two concurrent checkouts cannot both squeeze past the
// same last unit.
func (s *reservationService) Checkout(ctx context.Context, memberID int32, cart []domain.CartItem) ([]int32, error) {
	if memberID <= 0 {
		return nil, domain.ErrNotAuthenticated
	}
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, item := range cart {
		if item.GearID <= 0 {
			return nil, &domain.ValidationError{Field: "gear_id", Reason: "missing gear item reference"}
		}
		if item.StartAt.IsZero() || item.EndAt.IsZero() {
			return nil, &domain.ValidationError{Field: "date range", Reason: "start and end are required"}
		}
		if !item.StartAt.Before(item.EndAt) {
			return nil, &domain.ValidationError{Field: "date range", Reason: "end must be after start"}
		}
	}

	status, err := s.membership.Status(ctx, memberID)
	if err != nil {
		return nil, err
	}
	switch status {
	case domain.MembershipNoRecord:
		return nil, domain.ErrNoMembership
	case domain.MembershipInvalid:
		return nil, domain.ErrMembershipInvalid
	}

	var bookingIDs []int32
	err = s.store.WithinTx(ctx, func(ctx context.Context) error {
		bookingIDs = bookingIDs[:0] // the transaction may be retried

		// One rental slot per member: none of the requested ranges may
		// overlap any of the member's active bookings, whatever gear those
		// are for. Items within the same cart are not checked against each
		// other.
		existing, err := s.bookingRepo.ListActiveByMember(ctx, memberID)
		if err != nil {
			return fmt.Errorf("list active bookings for member %d: %w", memberID, err)
		}
		for _, item := range cart {
			for _, b := range existing {
				if availability.Overlaps(item.StartAt, item.EndAt, b.StartAt, b.EndAt, s.buffer) {
					return &domain.MemberOverlapError{
						GearID:   item.GearID,
						GearName: item.Name,
						Start:    item.StartAt,
						End:      item.EndAt,
					}
				}
			}
		}

		// Capacity counts persisted bookings plus the cart's own earlier
		// items: two copies of a one-unit item in the same cart must not
		// both fit.
		pending := make(map[int32][]domain.Booking)
		for _, item := range cart {
			gear, err := s.gearRepo.GetByIDForUpdate(ctx, item.GearID)
			if errors.Is(err, repository.ErrNotFound) {
				return &domain.ValidationError{Field: "gear_id", Reason: fmt.Sprintf("unknown gear item %d", item.GearID)}
			}
			if err != nil {
				return fmt.Errorf("load gear %d: %w", item.GearID, err)
			}
			booked, err := s.bookingRepo.ListActiveByGear(ctx, item.GearID)
			if err != nil {
				return fmt.Errorf("list bookings for gear %d: %w", item.GearID, err)
			}
			booked = append(booked, pending[item.GearID]...)
			if !availability.HasCapacity(item.StartAt, item.EndAt, booked, gear.Capacity, s.buffer) {
				return &domain.ItemUnavailableError{GearID: gear.ID, GearName: gear.Name}
			}
			pending[item.GearID] = append(pending[item.GearID], domain.Booking{
				GearID:  item.GearID,
				StartAt: item.StartAt,
				EndAt:   item.EndAt,
			})
		}

		for _, item := range cart {
			booking := &domain.Booking{
				MemberID:   memberID,
				GearID:     item.GearID,
				StartAt:    item.StartAt,
				EndAt:      item.EndAt,
				PriceCents: item.PriceCents,
			}
			if err := s.bookingRepo.Create(ctx, booking); err != nil {
				return fmt.Errorf("insert booking for gear %d: %w", item.GearID, err)
			}
			if err := s.gearRepo.AddRentalStats(ctx, item.GearID, 1, int64(item.PriceCents)); err != nil {
				return fmt.Errorf("update rental stats for gear %d: %w", item.GearID, err)
			}
			bookingIDs = append(bookingIDs, booking.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendConfirmation(ctx, memberID, cart)
	return bookingIDs, nil
}

func (s *reservationService) Cancel(ctx context.Context, memberID, bookingID int32) error {
	if memberID <= 0 {
		return domain.ErrNotAuthenticated
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("load booking %d: %w", bookingID, err)
	}
	if booking.MemberID != memberID {
		return domain.ErrNotBookingOwner
	}
	if booking.Returned {
		return domain.ErrAlreadyReturned
	}
	if !booking.StartAt.After(s.now()) {
		return domain.ErrAlreadyStarted
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("delete booking %d: %w", bookingID, err)
	}

	// The deletion is the primary effect. A failed statistics reversal is
	// logged for reconciliation, never used to undo the delete.
	if err := s.gearRepo.AddRentalStats(ctx, booking.GearID, -1, -int64(booking.PriceCents)); err != nil {
		logger.Error("failed to reverse rental statistics after cancellation",
			"booking_id", bookingID, "gear_id", booking.GearID, "member_id", memberID, "error", err)
	}

	s.sendCancellationNotice(ctx, memberID, booking)
	return nil
}

func (s *reservationService) ListBookings(ctx context.Context, memberID int32) ([]domain.Booking, error) {
	if memberID <= 0 {
		return nil, domain.ErrNotAuthenticated
	}
	return s.bookingRepo.ListByMember(ctx, memberID)
}

// Emails are best-effort and never fail the request.
func (s *reservationService) sendConfirmation(ctx context.Context, memberID int32, cart []domain.CartItem) {
	if s.emailSvc == nil {
		return
	}
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		logger.Warn("skipping booking confirmation email", "member_id", memberID, "error", err)
		return
	}
	if err := s.emailSvc.SendBookingConfirmation(ctx, member.Email, member.Name, cart); err != nil {
		logger.Warn("booking confirmation email failed", "member_id", memberID, "error", err)
	}
}

func (s *reservationService) sendCancellationNotice(ctx context.Context, memberID int32, booking *domain.Booking) {
	if s.emailSvc == nil {
		return
	}
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		logger.Warn("skipping cancellation email", "member_id", memberID, "error", err)
		return
	}
	gearName := fmt.Sprintf("gear item %d", booking.GearID)
	if gear, err := s.gearRepo.GetByID(ctx, booking.GearID); err == nil {
		gearName = gear.Name
	}
	if err := s.emailSvc.SendCancellationNotice(ctx, member.Email, member.Name, gearName, booking.StartAt); err != nil {
		logger.Warn("cancellation email failed", "member_id", memberID, "booking_id", booking.ID, "error", err)
	}
}
