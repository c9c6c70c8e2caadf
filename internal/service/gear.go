package service

import (
	"context"

	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/domain"
	"github.com/honzikschenk/uw-outersclub-site-sub000/internal/repository"
)

// gearService exposes catalog reads for the browse pages. Content editing
// lives in the catalog management tooling, not here.
type gearService struct {
	gearRepo repository.GearRepository
}

func NewGearService(gearRepo repository.GearRepository) GearService {
	return &gearService{gearRepo: gearRepo}
}

func (s *gearService) GetGear(ctx context.Context, id int32) (*domain.GearItem, error) {
	return s.gearRepo.GetByID(ctx, id)
}

func (s *gearService) ListGear(ctx context.Context, category string) ([]domain.GearItem, error) {
	return s.gearRepo.List(ctx, category)
}
