package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, member_id, gear_id, start_at, end_at, returned, unit_id, price_cents, created_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (member_id, gear_id, start_at, end_at, returned, unit_id, price_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		b.MemberID, b.GearID, b.StartAt, b.EndAt, b.Returned, b.UnitID, b.PriceCents, now).Scan(&b.ID)
	if err != nil {
		return err
	}
	b.CreatedOn = now
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&b.ID, &b.MemberID, &b.GearID, &b.StartAt, &b.EndAt, &b.Returned, &b.UnitID, &b.PriceCents, &b.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int32) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) ListActiveByGear(ctx context.Context, gearID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE gear_id = $1 AND returned = FALSE ORDER BY start_at`
	return r.list(ctx, query, gearID)
}

func (r *bookingRepository) ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE member_id = $1 AND returned = FALSE ORDER BY start_at`
	return r.list(ctx, query, memberID)
}

func (r *bookingRepository) ListByMember(ctx context.Context, memberID int32) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE member_id = $1 ORDER BY returned, start_at DESC`
	return r.list(ctx, query, memberID)
}

func (r *bookingRepository) list(ctx context.Context, query string, arg interface{}) ([]domain.Booking, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.MemberID, &b.GearID, &b.StartAt, &b.EndAt, &b.Returned, &b.UnitID, &b.PriceCents, &b.CreatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
