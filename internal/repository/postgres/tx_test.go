package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMockStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return postgres.NewStore(db), mock
}

func TestStore_WithinTx_CommitsOnSuccess(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bookings WHERE id = \\$1").
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		return store.BookingRepository.Delete(ctx, 1)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "the statement must run on the transaction, not the pool")
}

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	failure := errors.New("capacity exhausted")
	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithinTx_RetriesSerializationFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls, "the callback must re-run after a serialization failure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithinTx_GivesUpAfterMaxAttempts(t *testing.T) {
	store, mock := newMockStore(t)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	}

	calls := 0
	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.Error(t, err)
	assert.Equal(t, 3, calls)
	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_WithinTx_NestedCallJoinsTransaction(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM bookings WHERE id = \\$1").
		WithArgs(int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.WithinTx(context.Background(), func(ctx context.Context) error {
		return store.WithinTx(ctx, func(ctx context.Context) error {
			return store.BookingRepository.Delete(ctx, 1)
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "a nested call must not open a second transaction")
}
