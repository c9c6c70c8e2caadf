package service

import (
	"context"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"

	"github.com/stretchr/testify/mock"
)

// fakeTransactor runs the function directly; the transactional behavior
// itself is the postgres package's concern.
type fakeTransactor struct{}

func (fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MockGearRepo struct {
	mock.Mock
}

func (m *MockGearRepo) GetByID(ctx context.Context, id int32) (*domain.GearItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GearItem), args.Error(1)
}
func (m *MockGearRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.GearItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GearItem), args.Error(1)
}
func (m *MockGearRepo) List(ctx context.Context, category string) ([]domain.GearItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GearItem), args.Error(1)
}
func (m *MockGearRepo) AddRentalStats(ctx context.Context, id int32, countDelta int32, revenueDeltaCents int64) error {
	args := m.Called(ctx, id, countDelta, revenueDeltaCents)
	return args.Error(0)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListActiveByGear(ctx context.Context, gearID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, gearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListActiveByMember(ctx context.Context, memberID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByMember(ctx context.Context, memberID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name string, items []domain.CartItem) error {
	args := m.Called(ctx, email, name, items)
	return args.Error(0)
}
func (m *MockEmailService) SendCancellationNotice(ctx context.Context, email, name, gearName string, start time.Time) error {
	args := m.Called(ctx, email, name, gearName, start)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, email, name, gearName string, start time.Time) error {
	args := m.Called(ctx, email, name, gearName, start)
	return args.Error(0)
}
