package repository

import (
	"errors"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"gorm.io/gorm"
)

type WalletRepository struct {
	DB *gorm.DB
}

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

func (r *WalletRepository) GetOrCreate(db *gorm.DB, userID uint) (*entity.Wallet, error) {
	var w entity.Wallet
	err := db.Where("user_id = ?", userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		w = entity.Wallet{UserID: userID}
		if err := db.Create(&w).Error; err != nil {
			return nil, err
		}
		return &w, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalletRepository) TopUp(userID uint, amount int64) error {
	if _, err := r.GetOrCreate(r.DB, userID); err != nil {
		return err
	}
	return r.DB.Model(&entity.Wallet{}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

// Debit withdraws inside the caller's transaction. The balance guard makes
// the check and the write one atomic statement; RowsAffected == 0 means the
// funds were not there.
func (r *WalletRepository) Debit(tx *gorm.DB, userID uint, amount int64) (int64, error) {
	res := tx.Model(&entity.Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	return res.RowsAffected, res.Error
}
