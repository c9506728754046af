package services

import (
	"time"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"

	"gorm.io/gorm"
)

type TokenService struct {
	DB   *gorm.DB
	Repo *repository.TokenRepository
	Feed Feed
}

func NewTokenService(db *gorm.DB, repo *repository.TokenRepository) *TokenService {
	return &TokenService{DB: db, Repo: repo}
}

func (s *TokenService) ListByOrder(orderID uint) ([]entity.ScratchToken, error) {
	return s.Repo.ListByOrder(orderID)
}

// Reveal stamps used=true and revealedAt=now on first reveal. A second
// reveal of the same token returns ErrTokenUsed and changes nothing; the
// visibility window keys off the first stamp only.
func (s *TokenService) Reveal(tokenID, userID uint) (*entity.ScratchToken, error) {
	t, err := s.Repo.Get(tokenID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTokenNotFound
	}
	if t.UserID != userID {
		return nil, ErrForbidden
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.Reveal(tx, tokenID, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTokenUsed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	t, err = s.Repo.Get(tokenID)
	if err != nil {
		return nil, err
	}
	if s.Feed != nil && t != nil {
		s.Feed.Broadcast(FeedForOrder(t.OrderID), TokenEvent{Type: "token.revealed", Token: t})
	}
	return t, nil
}

// TokenEvent is pushed on the per-order feed channel.
type TokenEvent struct {
	Type  string               `json:"type"`
	Token *entity.ScratchToken `json:"token"`
}
