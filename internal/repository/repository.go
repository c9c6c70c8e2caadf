package repository

import (
	"context"
	"errors"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
)

// ErrNotFound is returned by point lookups when no row matches.
var ErrNotFound = errors.New("record not found")

// Transactor runs a function inside one database transaction. Repositories
// participate through the context, so services can group reads, checks and
// writes into a single atomic unit without knowing the driver.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type MemberRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
}

type GearRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.GearItem, error)
	// GetByIDForUpdate locks the gear row for the rest of the surrounding
	// transaction, serializing concurrent capacity checks on the same item.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.GearItem, error)
	List(ctx context.Context, category string) ([]domain.GearItem, error)
	// AddRentalStats applies relative deltas to the usage aggregates in one
	// atomic update, floored at zero.
	AddRentalStats(ctx context.Context, id int32, countDelta int32, revenueDeltaCents int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Delete(ctx context.Context, id int32) error
	// ListActiveByGear returns every not-yet-returned booking of a gear
	// item, regardless of member.
	ListActiveByGear(ctx context.Context, gearID int32) ([]domain.Booking, error)
	ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Booking, error)
	ListByMember(ctx context.Context, memberID int32) ([]domain.Booking, error)
}
