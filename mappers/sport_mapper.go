// file: mappers/sport_mapper.go
package mappers

import (
	"sportsfest/dto"
	"sportsfest/models"
)

func MapTeamToItemResp(team models.Team) dto.TeamItemResp {
	members := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, m.RegNumber)
	}
	return dto.TeamItemResp{
		ID:         team.ID,
		TeamName:   team.TeamName,
		CaptainReg: team.CaptainReg,
		Gender:     string(team.Gender),
		BatchYear:  team.BatchYear,
		Members:    members,
	}
}

func MapSportToDetailResp(sport models.Sport) dto.SportDetailResp {
	captains := make([]string, 0, len(sport.Captains))
	for _, c := range sport.Captains {
		captains = append(captains, c.RegNumber)
	}
	coordinators := make([]string, 0, len(sport.Coordinators))
	for _, c := range sport.Coordinators {
		coordinators = append(coordinators, c.RegNumber)
	}
	teams := make([]dto.TeamItemResp, 0, len(sport.Teams))
	for _, t := range sport.Teams {
		teams = append(teams, MapTeamToItemResp(t))
	}
	entries := make([]string, 0, len(sport.Entries))
	for _, e := range sport.Entries {
		entries = append(entries, e.RegNumber)
	}
	return dto.SportDetailResp{
		ID:           sport.ID,
		EventID:      sport.EventID,
		SportName:    sport.SportName,
		Type:         string(sport.Type),
		Category:     sport.Category,
		TeamSize:     sport.TeamSize,
		Captains:     captains,
		Coordinators: coordinators,
		Teams:        teams,
		Entries:      entries,
	}
}
