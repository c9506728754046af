package repository

import (
	"errors"
	"time"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"gorm.io/gorm"
)

type CanteenRepository struct {
	DB *gorm.DB
}

func NewCanteenRepository(db *gorm.DB) *CanteenRepository {
	return &CanteenRepository{DB: db}
}

// Status returns the singleton open/closed row, creating it open by default.
func (r *CanteenRepository) Status() (*entity.CanteenStatus, error) {
	var s entity.CanteenStatus
	err := r.DB.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entity.CanteenStatus{Open: true}
		if err := r.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CanteenRepository) SetOpen(open bool) error {
	s, err := r.Status()
	if err != nil {
		return err
	}
	s.Open = open
	return r.DB.Save(s).Error
}

// OwnerStats aggregates the dashboard numbers from order history.
type OwnerStats struct {
	Completed     int64 `json:"completed"`
	Pending       int64 `json:"pending"`
	TotalOrders   int64 `json:"totalOrders"`
	TodayEarnings int64 `json:"todayEarnings"`
	TotalEarnings int64 `json:"totalEarnings"`
}

func (r *CanteenRepository) Stats(now time.Time) (*OwnerStats, error) {
	var out OwnerStats

	if err := r.DB.Model(&entity.Order{}).Count(&out.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("status = ?", entity.StatusCompleted).
		Count(&out.Completed).Error; err != nil {
		return nil, err
	}
	out.Pending = out.TotalOrders - out.Completed

	var total struct{ Sum int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS sum").
		Where("status = ?", entity.StatusCompleted).
		Scan(&total).Error; err != nil {
		return nil, err
	}
	out.TotalEarnings = total.Sum

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var today struct{ Sum int64 }
	if err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS sum").
		Where("status = ? AND created_at_ms >= ?", entity.StatusCompleted, dayStart.UnixMilli()).
		Scan(&today).Error; err != nil {
		return nil, err
	}
	out.TodayEarnings = today.Sum

	return &out, nil
}
