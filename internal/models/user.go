package models

import (
	"time"
)

type User struct {
	ID          uint   `gorm:"primaryKey"`
	ReferenceID string `gorm:"uniqueIndex"`
	Firstname   string
	Lastname    string
	Email       string `gorm:"uniqueIndex"`
	Password    string
	Role        string
	Department  string
	Company     string
	TSM         string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
