package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/xchire/acculog/internal/config"
	"github.com/xchire/acculog/internal/models"
	"github.com/xchire/acculog/internal/utils"
)

func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := cfg.AdminEmail
	if email == "" {
		email = "admin@example.com"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
	}
	referenceID := cfg.AdminReferenceID
	if referenceID == "" {
		referenceID = "ADMIN-0001"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		ReferenceID: referenceID,
		Firstname:   cfg.AdminFirstname,
		Lastname:    cfg.AdminLastname,
		Email:       email,
		Password:    hashed,
		Role:        "admin",
		Department:  "Human Resources",
		Active:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded initial admin:", email)
	return nil
}
