package controllers

import (
	"github.com/xchire/acculog/internal/models"
	"github.com/xchire/acculog/internal/ws"
)

func broadcastActivity(hub *ws.AttendanceHub, entry models.ActivityLog) {
	if hub == nil {
		return
	}
	hub.Broadcast(ws.ActivityPayload{
		ID:          entry.ID,
		ReferenceID: entry.ReferenceID,
		Email:       entry.Email,
		Type:        entry.Type,
		Status:      entry.Status,
		Location:    entry.Location,
		DateCreated: entry.DateCreated,
	})
}
