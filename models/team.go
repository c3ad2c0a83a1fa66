// file: models/team.go
package models

import (
	"time"
)

// Team is a registered team inside one sport. Gender and batch year are the
// homogeneity reference values validated at creation; the captain is fixed
// for the team's lifetime.
type Team struct {
	ID         uint32       `gorm:"primarykey" json:"id"`
	SportID    uint32       `gorm:"uniqueIndex:unique_sport_team;not null" json:"sport_id"`
	TeamName   string       `gorm:"size:100;not null" json:"team_name"`
	NameKey    string       `gorm:"size:100;uniqueIndex:unique_sport_team;not null" json:"-"`
	CaptainReg string       `gorm:"size:20;not null" json:"captain_reg"`
	Gender     Gender       `gorm:"type:enum('male','female');not null" json:"gender"`
	BatchYear  int          `gorm:"not null" json:"batch_year"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Members    []TeamMember `gorm:"foreignKey:TeamID" json:"members"`
}

func (Team) TableName() string {
	return "sportsfest_team"
}

// HasMember reports whether reg is on the team.
func (t *Team) HasMember(reg string) bool {
	for _, m := range t.Members {
		if m.RegNumber == reg {
			return true
		}
	}
	return false
}

type TeamMember struct {
	ID        uint32    `gorm:"primarykey" json:"-"`
	TeamID    uint32    `gorm:"uniqueIndex:unique_team_member;not null" json:"-"`
	RegNumber string    `gorm:"size:20;uniqueIndex:unique_team_member;not null" json:"reg_number"`
	JoinedAt  time.Time `json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "sportsfest_team_member"
}
