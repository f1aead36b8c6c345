package models

import "time"

// ActivityLog is one attendance event. Rows are append-only: after
// insert nothing changes except Remarks, which has its own update path.
type ActivityLog struct {
	ID               uint   `gorm:"primaryKey"`
	ReferenceID      string `gorm:"index:idx_task_logs_ref_created,priority:1"`
	Email            string
	Type             string
	Status           string `gorm:"index"`
	Location         string
	Latitude         *float64
	Longitude        *float64
	PhotoURL         string
	SitePhotoURL     string
	SiteVisitAccount string
	TSM              string
	Remarks          string
	DateCreated      time.Time `gorm:"index:idx_task_logs_ref_created,priority:2"`
	UpdatedAt        time.Time
}

func (ActivityLog) TableName() string {
	return "task_logs"
}
