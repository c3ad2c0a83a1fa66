// file: models/event.go
package models

import (
	"time"
)

// Event is one edition of the festival. ScopeKey is the stable identifier
// everything under the event hangs off; DisplayCode is the short code shown
// to participants.
type Event struct {
	ID                uint32    `gorm:"primarykey" json:"id"`
	EventName         string    `gorm:"size:100;not null" json:"event_name" binding:"required"`
	ScopeKey          string    `gorm:"size:36;unique;not null" json:"scope_key"`
	DisplayCode       string    `gorm:"size:16;not null" json:"display_code"`
	RegistrationStart time.Time `gorm:"not null" json:"registration_start" binding:"required"`
	RegistrationEnd   time.Time `gorm:"not null" json:"registration_end" binding:"required"`
	EventStart        time.Time `gorm:"not null" json:"event_start" binding:"required"`
	EventEnd          time.Time `gorm:"not null" json:"event_end" binding:"required"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "sportsfest_event"
}
