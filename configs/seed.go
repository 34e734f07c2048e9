package configs

import (
	"log"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     "Admin",
		Role:          entity.RoleAdmin,
		AccountStatus: entity.AccountActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin:", email)
	return nil
}
