// file: dto/team.go
package dto

type CreateTeamReq struct {
	TeamName string   `json:"team_name" binding:"required"`
	Members  []string `json:"members" binding:"required"`
}

type ReplaceMemberReq struct {
	OldRegNumber string `json:"old_reg_number" binding:"required"`
	NewRegNumber string `json:"new_reg_number" binding:"required"`
}
