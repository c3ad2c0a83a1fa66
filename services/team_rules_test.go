// file: services/team_rules_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsfest/models"
)

func intPtr(v int) *int { return &v }

func rosterOf(entries ...RosterEntry) map[string]RosterEntry {
	roster := make(map[string]RosterEntry, len(entries))
	for _, e := range entries {
		roster[e.RegNumber] = e
	}
	return roster
}

func cricketSport(captains ...string) models.Sport {
	sport := models.Sport{
		SportName: "Cricket",
		Type:      models.SportDualTeam,
		TeamSize:  intPtr(3),
	}
	for _, reg := range captains {
		sport.Captains = append(sport.Captains, models.SportCaptain{RegNumber: reg})
	}
	return sport
}

func baseRequest() TeamCreationRequest {
	return TeamCreationRequest{
		Sport:     cricketSport("R1"),
		TeamName:  "Strikers",
		Members:   []string{"R1", "R2", "R3"},
		ActingReg: "R1",
		Roster: rosterOf(
			RosterEntry{RegNumber: "R1", Gender: models.GenderMale, BatchYear: 2023},
			RosterEntry{RegNumber: "R2", Gender: models.GenderMale, BatchYear: 2023},
			RosterEntry{RegNumber: "R3", Gender: models.GenderMale, BatchYear: 2023},
		),
		Quotas: map[string]QuotaSnapshot{
			"R1": {CaptainRoles: 1},
			"R2": {},
			"R3": {},
		},
	}
}

func TestValidateTeamCreation(t *testing.T) {
	t.Run("valid request has no violations", func(t *testing.T) {
		assert.Empty(t, ValidateTeamCreation(baseRequest()))
	})

	t.Run("player sport is rejected", func(t *testing.T) {
		req := baseRequest()
		req.Sport.Type = models.SportDualPlayer
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("gender mismatch against the first member is rejected", func(t *testing.T) {
		req := baseRequest()
		entry := req.Roster["R3"]
		entry.Gender = models.GenderFemale
		req.Roster["R3"] = entry
		violations := ValidateTeamCreation(req)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "gender")
	})

	t.Run("all violations are collected, not just the first", func(t *testing.T) {
		req := baseRequest()
		entry := req.Roster["R2"]
		entry.Gender = models.GenderFemale
		entry.BatchYear = 2024
		req.Roster["R2"] = entry
		violations := ValidateTeamCreation(req)
		assert.Len(t, violations, 2)
	})

	t.Run("unknown member is rejected", func(t *testing.T) {
		req := baseRequest()
		delete(req.Roster, "R3")
		violations := ValidateTeamCreation(req)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "roster")
	})

	t.Run("duplicate team name is case-insensitive", func(t *testing.T) {
		req := baseRequest()
		req.Sport.Teams = []models.Team{{TeamName: "STRIKERS", NameKey: "strikers"}}
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("no eligible captain among members", func(t *testing.T) {
		req := baseRequest()
		req.Sport.Captains = nil
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("two eligible captains among members", func(t *testing.T) {
		req := baseRequest()
		req.Sport.Captains = append(req.Sport.Captains, models.SportCaptain{RegNumber: "R2"})
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("acting user must be the captain", func(t *testing.T) {
		req := baseRequest()
		req.ActingReg = "R2"
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("acting user must be listed", func(t *testing.T) {
		req := baseRequest()
		req.Members = []string{"R2", "R3", "R4"}
		req.Roster["R4"] = RosterEntry{RegNumber: "R4", Gender: models.GenderMale, BatchYear: 2023}
		req.Quotas["R4"] = QuotaSnapshot{}
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("coordinator cannot be a team member", func(t *testing.T) {
		req := baseRequest()
		req.Sport.Coordinators = []models.SportCoordinator{{RegNumber: "R3"}}
		violations := ValidateTeamCreation(req)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "coordinates")
	})

	t.Run("member count must match team size", func(t *testing.T) {
		req := baseRequest()
		req.Sport.TeamSize = intPtr(4)
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("member of another team is rejected", func(t *testing.T) {
		req := baseRequest()
		req.Sport.Teams = []models.Team{{
			TeamName: "Rivals",
			NameKey:  "rivals",
			Members:  []models.TeamMember{{RegNumber: "R2"}},
		}}
		violations := ValidateTeamCreation(req)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "Rivals")
	})

	t.Run("captain quota C plus N is enforced", func(t *testing.T) {
		req := baseRequest()
		req.Quotas["R2"] = QuotaSnapshot{CaptainRoles: 6, IndividualEntries: 5}
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("captain cannot create more teams than captain roles", func(t *testing.T) {
		req := baseRequest()
		req.Quotas["R1"] = QuotaSnapshot{CaptainRoles: 1, TeamsAsCaptain: 1}
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})

	t.Run("unique sport participation quota is enforced", func(t *testing.T) {
		req := baseRequest()
		req.Quotas["R3"] = QuotaSnapshot{SportsJoined: MaxParticipations}
		assert.NotEmpty(t, ValidateTeamCreation(req))
	})
}

func TestValidateEnrollment(t *testing.T) {
	chess := models.Sport{SportName: "Chess", Type: models.SportDualPlayer}

	t.Run("valid enrollment", func(t *testing.T) {
		assert.Empty(t, ValidateEnrollment(chess, "R1", QuotaSnapshot{}))
	})

	t.Run("team sport is rejected", func(t *testing.T) {
		assert.NotEmpty(t, ValidateEnrollment(cricketSport(), "R1", QuotaSnapshot{}))
	})

	t.Run("double enrollment is rejected", func(t *testing.T) {
		enrolled := chess
		enrolled.Entries = []models.IndividualEntry{{RegNumber: "R1"}}
		assert.NotEmpty(t, ValidateEnrollment(enrolled, "R1", QuotaSnapshot{}))
	})

	t.Run("coordinator cannot enroll in their own sport", func(t *testing.T) {
		overseen := chess
		overseen.Coordinators = []models.SportCoordinator{{RegNumber: "R1"}}
		violations := ValidateEnrollment(overseen, "R1", QuotaSnapshot{})
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "coordinates")
	})

	t.Run("enrollment counts against the participation quota", func(t *testing.T) {
		quota := QuotaSnapshot{CaptainRoles: 4, IndividualEntries: 6}
		assert.NotEmpty(t, ValidateEnrollment(chess, "R1", quota))
	})

	t.Run("enrollment at the quota boundary passes", func(t *testing.T) {
		quota := QuotaSnapshot{CaptainRoles: 4, IndividualEntries: 5, SportsJoined: 9}
		assert.Empty(t, ValidateEnrollment(chess, "R1", quota))
	})
}

func TestValidateReplacement(t *testing.T) {
	sport := cricketSport("R1")
	team := models.Team{
		ID:         7,
		TeamName:   "Strikers",
		NameKey:    "strikers",
		CaptainReg: "R1",
		Gender:     models.GenderMale,
		BatchYear:  2023,
		Members: []models.TeamMember{
			{RegNumber: "R1"}, {RegNumber: "R2"}, {RegNumber: "R3"},
		},
	}
	sport.Teams = []models.Team{team}
	newEntry := &RosterEntry{RegNumber: "R9", Gender: models.GenderMale, BatchYear: 2023}

	t.Run("replacing a regular member succeeds", func(t *testing.T) {
		assert.Empty(t, ValidateReplacement(sport, team, "R2", "R9", newEntry, QuotaSnapshot{}))
	})

	t.Run("replacing the captain always fails", func(t *testing.T) {
		violations := ValidateReplacement(sport, team, "R1", "R9", newEntry, QuotaSnapshot{})
		require.NotEmpty(t, violations)
		assert.Contains(t, violations[0], "captain")
	})

	t.Run("incoming member must match team gender", func(t *testing.T) {
		entry := &RosterEntry{RegNumber: "R9", Gender: models.GenderFemale, BatchYear: 2023}
		assert.NotEmpty(t, ValidateReplacement(sport, team, "R2", "R9", entry, QuotaSnapshot{}))
	})

	t.Run("incoming member must match team batch", func(t *testing.T) {
		entry := &RosterEntry{RegNumber: "R9", Gender: models.GenderMale, BatchYear: 2025}
		assert.NotEmpty(t, ValidateReplacement(sport, team, "R2", "R9", entry, QuotaSnapshot{}))
	})

	t.Run("incoming member must not play for another team", func(t *testing.T) {
		withRival := sport
		withRival.Teams = append([]models.Team{}, sport.Teams...)
		withRival.Teams = append(withRival.Teams, models.Team{
			ID: 8, TeamName: "Rivals", NameKey: "rivals",
			Members: []models.TeamMember{{RegNumber: "R9"}},
		})
		assert.NotEmpty(t, ValidateReplacement(withRival, team, "R2", "R9", newEntry, QuotaSnapshot{}))
	})

	t.Run("coordinator cannot be swapped in", func(t *testing.T) {
		overseen := sport
		overseen.Coordinators = []models.SportCoordinator{{RegNumber: "R9"}}
		violations := ValidateReplacement(overseen, team, "R2", "R9", newEntry, QuotaSnapshot{})
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0], "coordinates")
	})

	t.Run("unknown incoming member fails", func(t *testing.T) {
		violations := ValidateReplacement(sport, team, "R2", "R9", nil, QuotaSnapshot{})
		require.NotEmpty(t, violations)
		assert.Contains(t, violations[0], "roster")
	})
}
