// file: mappers/match_mapper.go
package mappers

import (
	"sportsfest/dto"
	"sportsfest/models"
)

func MapMatchToResp(m models.Match) dto.MatchResp {
	resp := dto.MatchResp{
		ID:           m.ID,
		SportID:      m.SportID,
		MatchNumber:  m.MatchNumber,
		MatchType:    string(m.Type),
		Gender:       string(m.Gender),
		MatchDate:    m.MatchDate,
		Status:       string(m.Status),
		Winner:       m.Winner,
		Participants: m.ParticipantNames(),
	}
	if quals := m.Qualifiers(); len(quals) > 0 {
		resp.Qualifiers = quals
	}
	return resp
}

func MapMatchesToResp(matches []models.Match) []dto.MatchResp {
	items := make([]dto.MatchResp, 0, len(matches))
	for _, m := range matches {
		items = append(items, MapMatchToResp(m))
	}
	return items
}
