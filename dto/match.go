// file: dto/match.go
package dto

import "time"

type CreateMatchReq struct {
	MatchType    string    `json:"match_type" binding:"required"` // league / knockout / final
	MatchDate    time.Time `json:"match_date" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	Participants []string  `json:"participants" binding:"required"`
}

type UpdateMatchStatusReq struct {
	Status string `json:"status" binding:"required"` // completed / draw / cancelled
}

type DeclareWinnerReq struct {
	Winner string `json:"winner" binding:"required"`
}

type DeclareQualifiersReq struct {
	Qualifiers []string `json:"qualifiers" binding:"required"`
}

type MatchResp struct {
	ID           uint32    `json:"id"`
	SportID      uint32    `json:"sport_id"`
	MatchNumber  uint      `json:"match_number"`
	MatchType    string    `json:"match_type"`
	Gender       string    `json:"gender"`
	MatchDate    time.Time `json:"match_date"`
	Status       string    `json:"status"`
	Winner       *string   `json:"winner,omitempty"`
	Participants []string  `json:"participants"`
	Qualifiers   []string  `json:"qualifiers,omitempty"`
}
