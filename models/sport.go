// file: models/sport.go
package models

import (
	"strings"
	"time"
)

type SportType string

const (
	SportDualTeam    SportType = "dual_team"
	SportMultiTeam   SportType = "multi_team"
	SportDualPlayer  SportType = "dual_player"
	SportMultiPlayer SportType = "multi_player"
)

func (t SportType) Valid() bool {
	switch t {
	case SportDualTeam, SportMultiTeam, SportDualPlayer, SportMultiPlayer:
		return true
	}
	return false
}

// IsTeam reports whether participants are teams rather than individuals.
func (t SportType) IsTeam() bool {
	return t == SportDualTeam || t == SportMultiTeam
}

// IsDual reports whether matches are contested between exactly two sides.
func (t SportType) IsDual() bool {
	return t == SportDualTeam || t == SportDualPlayer
}

// NormalizeSportName produces the case-insensitive uniqueness key for a
// sport name within an event.
func NormalizeSportName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Sport is one discipline inside an event. Captains, coordinators, teams and
// individual entries all hang off the sport and are preloaded where the
// participation rules need the full picture.
type Sport struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	EventID   uint32    `gorm:"uniqueIndex:unique_event_sport;not null" json:"event_id"`
	SportName string    `gorm:"size:100;not null" json:"sport_name"`
	NameKey   string    `gorm:"size:100;uniqueIndex:unique_event_sport;not null" json:"-"`
	Type      SportType `gorm:"type:enum('dual_team','multi_team','dual_player','multi_player');not null" json:"type"`
	Category  string    `gorm:"size:100" json:"category"`
	TeamSize  *int      `json:"team_size,omitempty"`
	// NextMatchNumber is the sport's match-number counter. It only ever
	// advances, so numbers of deleted matches are never handed out again.
	NextMatchNumber uint `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Captains     []SportCaptain     `gorm:"foreignKey:SportID" json:"captains,omitempty"`
	Coordinators []SportCoordinator `gorm:"foreignKey:SportID" json:"coordinators,omitempty"`
	Teams        []Team             `gorm:"foreignKey:SportID" json:"teams,omitempty"`
	Entries      []IndividualEntry  `gorm:"foreignKey:SportID" json:"entries,omitempty"`
}

func (Sport) TableName() string {
	return "sportsfest_sport"
}

// IsEligibleCaptain reports whether reg holds a captain role for the sport.
func (s *Sport) IsEligibleCaptain(reg string) bool {
	for _, c := range s.Captains {
		if c.RegNumber == reg {
			return true
		}
	}
	return false
}

// IsCoordinator reports whether reg coordinates the sport.
func (s *Sport) IsCoordinator(reg string) bool {
	for _, c := range s.Coordinators {
		if c.RegNumber == reg {
			return true
		}
	}
	return false
}

// IsEnrolled reports whether reg has an individual entry in the sport.
func (s *Sport) IsEnrolled(reg string) bool {
	for _, e := range s.Entries {
		if e.RegNumber == reg {
			return true
		}
	}
	return false
}

// TeamOf returns the team reg belongs to, or nil.
func (s *Sport) TeamOf(reg string) *Team {
	for i := range s.Teams {
		if s.Teams[i].HasMember(reg) {
			return &s.Teams[i]
		}
	}
	return nil
}

// TeamByName returns the team matching name case-insensitively, or nil.
func (s *Sport) TeamByName(name string) *Team {
	key := NormalizeSportName(name)
	for i := range s.Teams {
		if s.Teams[i].NameKey == key {
			return &s.Teams[i]
		}
	}
	return nil
}

// SportCaptain marks a player as eligible to create and lead one team of the
// sport. Assignment is admin-managed.
type SportCaptain struct {
	ID        uint32    `gorm:"primarykey" json:"-"`
	SportID   uint32    `gorm:"uniqueIndex:unique_sport_captain;not null" json:"-"`
	RegNumber string    `gorm:"size:20;uniqueIndex:unique_sport_captain;not null" json:"reg_number"`
	CreatedAt time.Time `json:"created_at"`
}

func (SportCaptain) TableName() string {
	return "sportsfest_sport_captain"
}

// SportCoordinator marks a player as the sport's scheduler. Coordinators are
// disjoint from every participant role of the same sport.
type SportCoordinator struct {
	ID        uint32    `gorm:"primarykey" json:"-"`
	SportID   uint32    `gorm:"uniqueIndex:unique_sport_coordinator;not null" json:"-"`
	RegNumber string    `gorm:"size:20;uniqueIndex:unique_sport_coordinator;not null" json:"reg_number"`
	CreatedAt time.Time `json:"created_at"`
}

func (SportCoordinator) TableName() string {
	return "sportsfest_sport_coordinator"
}

// IndividualEntry is one player's enrollment in a player sport.
type IndividualEntry struct {
	ID        uint32    `gorm:"primarykey" json:"-"`
	SportID   uint32    `gorm:"uniqueIndex:unique_sport_entry;not null" json:"-"`
	RegNumber string    `gorm:"size:20;uniqueIndex:unique_sport_entry;not null" json:"reg_number"`
	CreatedAt time.Time `json:"created_at"`
}

func (IndividualEntry) TableName() string {
	return "sportsfest_individual_entry"
}
