// file: dto/sport.go
package dto

// ========== Request DTOs ==========

type CreateSportReq struct {
	EventID   uint32 `json:"event_id" binding:"required"`
	SportName string `json:"sport_name" binding:"required"`
	Type      string `json:"type" binding:"required"` // dual_team / multi_team / dual_player / multi_player
	Category  string `json:"category"`
	TeamSize  *int   `json:"team_size"`
}

// RolePlayerReq targets one player for captain/coordinator/entry operations.
type RolePlayerReq struct {
	RegNumber string `json:"reg_number" binding:"required"`
}

// ========== Response DTOs ==========

type TeamItemResp struct {
	ID         uint32   `json:"id"`
	TeamName   string   `json:"team_name"`
	CaptainReg string   `json:"captain_reg"`
	Gender     string   `json:"gender"`
	BatchYear  int      `json:"batch_year"`
	Members    []string `json:"members"`
}

type SportDetailResp struct {
	ID           uint32         `json:"id"`
	EventID      uint32         `json:"event_id"`
	SportName    string         `json:"sport_name"`
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	TeamSize     *int           `json:"team_size,omitempty"`
	Captains     []string       `json:"captains"`
	Coordinators []string       `json:"coordinators"`
	Teams        []TeamItemResp `json:"teams"`
	Entries      []string       `json:"entries"`
}
