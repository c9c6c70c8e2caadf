package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	m := &domain.Member{}
	query := `SELECT id, name, email, valid, admin, joined_on FROM members WHERE id = $1`
	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Valid, &m.Admin, &m.JoinedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
