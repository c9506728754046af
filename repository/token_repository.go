package repository

import (
	"errors"
	"time"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"gorm.io/gorm"
)

type TokenRepository struct {
	DB *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

func (r *TokenRepository) Create(tx *gorm.DB, t *entity.ScratchToken) error {
	return tx.Create(t).Error
}

func (r *TokenRepository) Get(id uint) (*entity.ScratchToken, error) {
	var t entity.ScratchToken
	err := r.DB.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TokenRepository) ListByOrder(orderID uint) ([]entity.ScratchToken, error) {
	var out []entity.ScratchToken
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&out).Error
	return out, err
}

// Reveal stamps used + revealedAt exactly once. The guard on used=false keeps
// a second reveal (double tap, duplicate request) from re-stamping the time.
func (r *TokenRepository) Reveal(tx *gorm.DB, tokenID uint, now time.Time) (int64, error) {
	res := tx.Model(&entity.ScratchToken{}).
		Where("id = ? AND used = ?", tokenID, false).
		Updates(map[string]any{"used": true, "revealed_at": now})
	return res.RowsAffected, res.Error
}
