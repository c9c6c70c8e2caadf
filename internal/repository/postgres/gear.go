package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type gearRepository struct {
	db *sql.DB
}

func NewGearRepository(db *sql.DB) repository.GearRepository {
	return &gearRepository{db: db}
}

const gearColumns = `id, category, name, capacity, price_day_cents, price_3day_cents, price_week_cents, total_times_rented, revenue_generated_cents`

func (r *gearRepository) getByID(ctx context.Context, id int32, forUpdate bool) (*domain.GearItem, error) {
	query := `SELECT ` + gearColumns + ` FROM gear_items WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	g := &domain.GearItem{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&g.ID, &g.Category, &g.Name, &g.Capacity, &g.PriceDayCents, &g.Price3DayCents, &g.PriceWeekCents, &g.TimesRented, &g.RevenueCents)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *gearRepository) GetByID(ctx context.Context, id int32) (*domain.GearItem, error) {
	return r.getByID(ctx, id, false)
}

func (r *gearRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.GearItem, error) {
	return r.getByID(ctx, id, true)
}

func (r *gearRepository) List(ctx context.Context, category string) ([]domain.GearItem, error) {
	query := `SELECT ` + gearColumns + ` FROM gear_items`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.GearItem
	for rows.Next() {
		var g domain.GearItem
		if err := rows.Scan(&g.ID, &g.Category, &g.Name, &g.Capacity, &g.PriceDayCents, &g.Price3DayCents, &g.PriceWeekCents, &g.TimesRented, &g.RevenueCents); err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

// AddRentalStats bumps the usage aggregates relative to their current
// values. The floor guards decrements against drifting below zero; the
// update stays a single statement so concurrent checkouts never lose each
// other's increments.
func (r *gearRepository) AddRentalStats(ctx context.Context, id int32, countDelta int32, revenueDeltaCents int64) error {
	query := `UPDATE gear_items
	          SET total_times_rented = GREATEST(total_times_rented + $1, 0),
	              revenue_generated_cents = GREATEST(revenue_generated_cents + $2, 0)
	          WHERE id = $3`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, countDelta, revenueDeltaCents, id)
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
