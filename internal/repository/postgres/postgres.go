package postgres

import (
	"database/sql"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.GearRepository
	repository.BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		MemberRepository:  NewMemberRepository(db),
		GearRepository:    NewGearRepository(db),
		BookingRepository: NewBookingRepository(db),
	}
}
