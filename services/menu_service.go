package services

import (
	"fmt"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"
)

// MenuService is the catalog surface. The order core only reads from it.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) GetMenu() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Veg         bool   `json:"veg"`
	Category    string `json:"category" binding:"required"`
	Counter     string `json:"counter" binding:"required"`
	Available   bool   `json:"available"`
	MadeWith    string `json:"madeWith"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`
	PrepTime    int    `json:"prepTime"`
	Quantity    int    `json:"quantity"`
}

func (s *MenuService) Add(in *MenuItemIn) (*entity.MenuItem, error) {
	counter := entity.Counter(in.Counter)
	if !counter.Valid() {
		return nil, fmt.Errorf("%w: unknown counter %q", ErrInvalidInput, in.Counter)
	}
	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Veg:         in.Veg,
		Category:    in.Category,
		Counter:     counter,
		Available:   in.Available,
		MadeWith:    in.MadeWith,
		Calories:    in.Calories,
		Protein:     in.Protein,
		PrepTime:    in.PrepTime,
		Quantity:    in.Quantity,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}
	counter := entity.Counter(in.Counter)
	if !counter.Valid() {
		return nil, fmt.Errorf("%w: unknown counter %q", ErrInvalidInput, in.Counter)
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Veg = in.Veg
	item.Category = in.Category
	item.Counter = counter
	item.Available = in.Available
	item.MadeWith = in.MadeWith
	item.Calories = in.Calories
	item.Protein = in.Protein
	item.PrepTime = in.PrepTime
	item.Quantity = in.Quantity

	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	affected, err := s.Repo.SetAvailability(id, available)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) Delete(id uint) error {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMenuItemNotFound
	}
	return s.Repo.Delete(id)
}
