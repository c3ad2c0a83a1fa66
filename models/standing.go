// file: models/standing.go
package models

import (
	"time"
)

// Standing is one row of the recomputed league points table for a
// sport-gender partition. Rebuilt from completed league matches, never
// edited in place.
type Standing struct {
	ID        uint32    `gorm:"primarykey" json:"-"`
	SportID   uint32    `gorm:"index;not null" json:"sport_id"`
	Gender    Gender    `gorm:"type:enum('male','female');not null" json:"gender"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Played    int       `gorm:"not null" json:"played"`
	Wins      int       `gorm:"not null" json:"wins"`
	Draws     int       `gorm:"not null" json:"draws"`
	Losses    int       `gorm:"not null" json:"losses"`
	Points    int       `gorm:"not null" json:"points"`
	Rank      uint      `gorm:"not null" json:"rank"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Standing) TableName() string {
	return "sportsfest_standing"
}
