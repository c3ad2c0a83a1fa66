// file: services/calendar.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sportsfest/models"
)

// Window is the active date range of one event. It is resolved per request
// and threaded through explicitly; there is no ambient "current event".
type Window struct {
	RegistrationStart time.Time
	RegistrationEnd   time.Time
	EventStart        time.Time
	EventEnd          time.Time
}

// EventCalendar resolves the active window for an event scope.
type EventCalendar interface {
	ActiveWindow(eventID uint32) (*Window, error)
}

type gormCalendar struct {
	db *gorm.DB
}

func NewEventCalendar(db *gorm.DB) EventCalendar {
	return &gormCalendar{db: db}
}

func (c *gormCalendar) ActiveWindow(eventID uint32) (*Window, error) {
	var event models.Event
	if err := c.db.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &Window{
		RegistrationStart: event.RegistrationStart,
		RegistrationEnd:   event.RegistrationEnd,
		EventStart:        event.EventStart,
		EventEnd:          event.EventEnd,
	}, nil
}
