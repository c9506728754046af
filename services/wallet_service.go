package services

import (
	"fmt"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"
)

// WalletService backs the simulated payment flow. No gateway: top-ups are
// trusted, spends happen inside the checkout transaction.
type WalletService struct {
	Repo *repository.WalletRepository
}

func NewWalletService(repo *repository.WalletRepository) *WalletService {
	return &WalletService{Repo: repo}
}

func (s *WalletService) Balance(userID uint) (*entity.Wallet, error) {
	return s.Repo.GetOrCreate(s.Repo.DB, userID)
}

func (s *WalletService) TopUp(userID uint, amount int64) (*entity.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: top-up amount must be positive", ErrInvalidInput)
	}
	if err := s.Repo.TopUp(userID, amount); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreate(s.Repo.DB, userID)
}
