package services

import (
	"time"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"
)

// CanteenService is the owner-facing surface: dashboard stats and the
// open/closed switch that gates checkout.
type CanteenService struct {
	Repo *repository.CanteenRepository
}

func NewCanteenService(repo *repository.CanteenRepository) *CanteenService {
	return &CanteenService{Repo: repo}
}

func (s *CanteenService) Stats() (*repository.OwnerStats, error) {
	return s.Repo.Stats(time.Now())
}

func (s *CanteenService) Status() (*entity.CanteenStatus, error) {
	return s.Repo.Status()
}

func (s *CanteenService) SetOpen(open bool) error {
	return s.Repo.SetOpen(open)
}
