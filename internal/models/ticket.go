package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	TicketID      string `gorm:"uniqueIndex"`
	ReferenceID   string `gorm:"index"`
	RequestorName string
	TicketSubject string
	Department    string
	Mode          string
	Status        string
	Remarks       string
	DateCreated   time.Time
	UpdatedAt     time.Time
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (Ticket) TableName() string {
	return "tickets"
}
