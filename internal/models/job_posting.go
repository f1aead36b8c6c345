package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobPosting struct {
	ID             string `gorm:"type:uuid;primaryKey"`
	Title          string
	Category       string
	JobType        string
	Location       string
	Qualifications []string `gorm:"serializer:json"`
	Status         string   // Open or Closed
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (j *JobPosting) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

func (JobPosting) TableName() string {
	return "careers"
}
