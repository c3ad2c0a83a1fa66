// file: models/match.go
package models

import (
	"time"
)

type MatchType string
type MatchStatus string

const (
	MatchLeague   MatchType = "league"
	MatchKnockout MatchType = "knockout"
	MatchFinal    MatchType = "final"

	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusDraw      MatchStatus = "draw"
	MatchStatusCancelled MatchStatus = "cancelled"
)

func (t MatchType) Valid() bool {
	return t == MatchLeague || t == MatchKnockout || t == MatchFinal
}

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusCompleted, MatchStatusDraw, MatchStatusCancelled:
		return true
	}
	return false
}

// Elimination reports whether the match removes losers from the bracket.
func (t MatchType) Elimination() bool {
	return t == MatchKnockout || t == MatchFinal
}

// Match is one scheduled fixture of a sport. Participants are team names for
// team sports and registration numbers for player sports, never mixed.
// MatchNumber is monotonic per sport and never reused.
type Match struct {
	ID          uint32             `gorm:"primarykey" json:"id"`
	SportID     uint32             `gorm:"uniqueIndex:unique_sport_match;not null" json:"sport_id"`
	MatchNumber uint               `gorm:"uniqueIndex:unique_sport_match;not null" json:"match_number"`
	Type        MatchType          `gorm:"type:enum('league','knockout','final');not null" json:"match_type"`
	Gender      Gender             `gorm:"type:enum('male','female');not null" json:"gender"`
	MatchDate   time.Time          `gorm:"not null" json:"match_date"`
	Status      MatchStatus        `gorm:"type:enum('scheduled','completed','draw','cancelled');not null;default:'scheduled'" json:"status"`
	Winner      *string            `gorm:"size:100" json:"winner,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Participant []MatchParticipant `gorm:"foreignKey:MatchID" json:"participants"`
}

func (Match) TableName() string {
	return "sportsfest_match"
}

// ParticipantNames returns participants in side order.
func (m *Match) ParticipantNames() []string {
	names := make([]string, 0, len(m.Participant))
	for _, p := range m.Participant {
		names = append(names, p.Name)
	}
	return names
}

// HasParticipant reports whether name is one of the match's sides.
func (m *Match) HasParticipant(name string) bool {
	for _, p := range m.Participant {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Qualifiers returns the participants marked as surviving the match.
func (m *Match) Qualifiers() []string {
	quals := make([]string, 0)
	for _, p := range m.Participant {
		if p.Qualified {
			quals = append(quals, p.Name)
		}
	}
	return quals
}

// MatchParticipant is one side of a match. Qualified is only meaningful on
// completed multi-participant elimination matches.
type MatchParticipant struct {
	ID        uint32 `gorm:"primarykey" json:"-"`
	MatchID   uint32 `gorm:"uniqueIndex:unique_match_side;not null" json:"-"`
	Position  int    `gorm:"uniqueIndex:unique_match_side;not null" json:"position"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Qualified bool   `gorm:"not null;default:false" json:"qualified"`
}

func (MatchParticipant) TableName() string {
	return "sportsfest_match_participant"
}
