package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMemberRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewMemberRepository(db)
	ctx := context.Background()

	cols := []string{"id", "name", "email", "valid", "admin", "joined_on"}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow(3, "Robin Tran", "robin@example.edu", true, false, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		member, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, member.Valid)
		assert.Equal(t, "Robin Tran", member.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM members WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
