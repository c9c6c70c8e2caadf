package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/config"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/security"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReservationService struct {
	mock.Mock
}

var _ service.ReservationService = (*MockReservationService)(nil)

func (m *MockReservationService) Checkout(ctx context.Context, memberID int32, cart []domain.CartItem) ([]int32, error) {
	args := m.Called(ctx, memberID, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, memberID, bookingID int32) error {
	args := m.Called(ctx, memberID, bookingID)
	return args.Error(0)
}
func (m *MockReservationService) ListBookings(ctx context.Context, memberID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockGearService struct {
	mock.Mock
}

func (m *MockGearService) GetGear(ctx context.Context, id int32) (*domain.GearItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GearItem), args.Error(1)
}
func (m *MockGearService) ListGear(ctx context.Context, category string) ([]domain.GearItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GearItem), args.Error(1)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Rental.RateLimitPerMinute = 600
	cfg.Rental.RateLimitBurst = 100
	return cfg
}

func checkoutBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(checkoutRequest{Items: []checkoutItem{{
		GearID:     7,
		Name:       "4-Season Tent",
		Category:   "camping",
		Start:      time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		End:        time.Date(2026, 3, 13, 17, 0, 0, 0, time.UTC),
		RentalType: "3day",
		PriceCents: 2000,
	}}})
	assert.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandleCheckout(t *testing.T) {
	tm := security.NewTokenManager("test-secret-that-is-long-enough-0", time.Hour)
	token, err := tm.GenerateSessionToken(3, false)
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockReservationService)
		svc.On("Checkout", mock.Anything, int32(3), mock.Anything).Return([]int32{42}, nil)
		router := NewRouter(testConfig(), tm, svc, new(MockGearService))

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", checkoutBody(t))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp successResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, []int32{42}, resp.BookingIDs)
	})

	t.Run("MissingToken", func(t *testing.T) {
		svc := new(MockReservationService)
		router := NewRouter(testConfig(), tm, svc, new(MockGearService))

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", checkoutBody(t))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ItemUnavailable", func(t *testing.T) {
		svc := new(MockReservationService)
		svc.On("Checkout", mock.Anything, int32(3), mock.Anything).
			Return(nil, &domain.ItemUnavailableError{GearID: 7, GearName: "4-Season Tent"})
		router := NewRouter(testConfig(), tm, svc, new(MockGearService))

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", checkoutBody(t))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var resp errorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "4-Season Tent", "the rejection must name the offending item")
	})

	t.Run("EmptyCart", func(t *testing.T) {
		svc := new(MockReservationService)
		svc.On("Checkout", mock.Anything, int32(3), mock.Anything).Return(nil, domain.ErrEmptyCart)
		router := NewRouter(testConfig(), tm, svc, new(MockGearService))

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(`{"items":[]}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		svc := new(MockReservationService)
		router := NewRouter(testConfig(), tm, svc, new(MockGearService))

		req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCancel(t *testing.T) {
	tm := security.NewTokenManager("test-secret-that-is-long-enough-0", time.Hour)
	token, err := tm.GenerateSessionToken(3, false)
	assert.NoError(t, err)

	cases := []struct {
		name       string
		cancelErr  error
		wantStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"NotFound", domain.ErrBookingNotFound, http.StatusNotFound},
		{"NotOwner", domain.ErrNotBookingOwner, http.StatusForbidden},
		{"AlreadyReturned", domain.ErrAlreadyReturned, http.StatusConflict},
		{"AlreadyStarted", domain.ErrAlreadyStarted, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockReservationService)
			svc.On("Cancel", mock.Anything, int32(3), int32(42)).Return(tc.cancelErr)
			router := NewRouter(testConfig(), tm, svc, new(MockGearService))

			req := httptest.NewRequest(http.MethodPost, "/api/bookings/42/cancel", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
