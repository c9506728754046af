package configs

import (
	"log"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedOwner creates the canteen owner account on first boot.
func SeedOwner() error {
	db := DB()
	email := getEnv("OWNER_EMAIL", "")
	pass := getEnv("OWNER_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding owner: missing OWNER_EMAIL/OWNER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("owner already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	owner := entity.User{
		Email:       email,
		Password:    string(hash),
		DisplayName: "Canteen Owner",
		Role:        "owner",
	}
	return db.Create(&owner).Error
}

// SeedMenu loads a starter catalog when the menu is empty, one sample item
// per counter so every pickup flow is exercisable out of the box.
func SeedMenu() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Veg Sandwich", Description: "Grilled sandwich", Price: 40, Veg: true,
			Category: "Snacks", Counter: entity.CounterSnacks, Available: true, PrepTime: 5},
		{Name: "Masala Chai", Description: "Hot tea", Price: 15, Veg: true,
			Category: "Hot Beverages", Counter: entity.CounterSnacks, Available: true, PrepTime: 3},
		{Name: "Veg Thali", Description: "Full meal", Price: 80, Veg: true,
			Category: "Meals", Counter: entity.CounterMeals, Available: true, PrepTime: 10},
		{Name: "Cold Coffee", Description: "Iced coffee", Price: 50, Veg: true,
			Category: "Cold Beverages", Counter: entity.CounterColdBev, Available: true, PrepTime: 4},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("menu seeded")
	return nil
}
