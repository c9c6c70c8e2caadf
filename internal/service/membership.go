package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

type membershipService struct {
	memberRepo repository.MemberRepository
}

func NewMembershipService(memberRepo repository.MemberRepository) MembershipService {
	return &membershipService{memberRepo: memberRepo}
}

func (s *membershipService) Status(ctx context.Context, memberID int32) (domain.MembershipStatus, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.MembershipNoRecord, nil
	}
	if err != nil {
		return "", fmt.Errorf("membership lookup for member %d: %w", memberID, err)
	}
	if !member.Valid {
		return domain.MembershipInvalid, nil
	}
	return domain.MembershipValid, nil
}
