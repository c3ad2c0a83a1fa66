// file: services/team_rules.go
package services

import (
	"fmt"
	"strings"

	"sportsfest/models"
)

// MaxParticipations bounds a player's combined captain roles and individual
// enrollments, and separately their unique-sport participation count.
const MaxParticipations = 10

// QuotaSnapshot is one player's participation counters at validation time.
type QuotaSnapshot struct {
	// CaptainRoles is C: sports where the player is an eligible captain.
	CaptainRoles int
	// IndividualEntries is N: individual (non-team) enrollments.
	IndividualEntries int
	// TeamsAsCaptain counts teams the player has already created.
	TeamsAsCaptain int
	// SportsJoined counts unique sports with any participation (team
	// membership or individual entry).
	SportsJoined int
}

// TeamCreationRequest is everything the team-creation rules need, loaded
// up front so the checks themselves touch no storage.
type TeamCreationRequest struct {
	Sport     models.Sport // Captains and Teams (with Members) preloaded
	TeamName  string
	Members   []string
	ActingReg string
	Roster    map[string]RosterEntry // resolved entries; absent = not in roster
	Quotas    map[string]QuotaSnapshot
}

// ValidateTeamCreation evaluates every team-creation precondition and
// returns the full list of violations. An empty slice means the request may
// be committed.
func ValidateTeamCreation(req TeamCreationRequest) []string {
	violations := make([]string, 0)

	if !req.Sport.Type.IsTeam() {
		violations = append(violations, fmt.Sprintf("sport %q is not a team sport", req.Sport.SportName))
	}

	name := strings.TrimSpace(req.TeamName)
	if name == "" {
		violations = append(violations, "team name is required")
	} else if req.Sport.TeamByName(name) != nil {
		violations = append(violations, fmt.Sprintf("team name %q is already taken for this sport", name))
	}

	if len(req.Members) == 0 {
		violations = append(violations, "member list is empty")
		return violations
	}

	seen := make(map[string]bool, len(req.Members))
	for _, reg := range req.Members {
		if seen[reg] {
			violations = append(violations, fmt.Sprintf("member %s is listed more than once", reg))
		}
		seen[reg] = true
	}

	// Roster existence first; homogeneity is judged among resolved members.
	resolved := make([]RosterEntry, 0, len(req.Members))
	for _, reg := range req.Members {
		entry, ok := req.Roster[reg]
		if !ok {
			violations = append(violations, fmt.Sprintf("member %s is not in the roster", reg))
			continue
		}
		resolved = append(resolved, entry)
	}

	// Gender and batch homogeneity against the first resolved member.
	if len(resolved) > 0 {
		ref := resolved[0]
		for _, entry := range resolved[1:] {
			if entry.Gender != ref.Gender {
				violations = append(violations, fmt.Sprintf("member %s gender does not match %s", entry.RegNumber, ref.RegNumber))
			}
			if entry.BatchYear != ref.BatchYear {
				violations = append(violations, fmt.Sprintf("member %s batch year does not match %s", entry.RegNumber, ref.RegNumber))
			}
		}
	}

	// Exactly one listed member must be an eligible captain.
	captains := make([]string, 0, 1)
	for _, reg := range req.Members {
		if req.Sport.IsEligibleCaptain(reg) {
			captains = append(captains, reg)
		}
	}
	switch len(captains) {
	case 0:
		violations = append(violations, "no listed member is an eligible captain for this sport")
	case 1:
		if captains[0] != req.ActingReg {
			violations = append(violations, "only the eligible captain may create the team")
		}
	default:
		violations = append(violations, fmt.Sprintf("member list contains %d eligible captains, expected exactly one", len(captains)))
	}
	if !seen[req.ActingReg] {
		violations = append(violations, "acting user must be included in the member list")
	}

	if req.Sport.TeamSize != nil && len(req.Members) != *req.Sport.TeamSize {
		violations = append(violations, fmt.Sprintf("team must have exactly %d members, got %d", *req.Sport.TeamSize, len(req.Members)))
	}

	for _, reg := range req.Members {
		if team := req.Sport.TeamOf(reg); team != nil {
			violations = append(violations, fmt.Sprintf("member %s already belongs to team %q in this sport", reg, team.TeamName))
		}
		if req.Sport.IsCoordinator(reg) {
			violations = append(violations, fmt.Sprintf("member %s coordinates this sport and cannot compete in it", reg))
		}
	}

	// Participation quotas per member; the captain additionally may not
	// create more teams than captain roles held.
	for _, reg := range req.Members {
		quota, ok := req.Quotas[reg]
		if !ok {
			continue
		}
		if quota.CaptainRoles+quota.IndividualEntries > MaxParticipations {
			violations = append(violations, fmt.Sprintf("member %s exceeds the participation quota of %d", reg, MaxParticipations))
		}
		if quota.SportsJoined+1 > MaxParticipations {
			violations = append(violations, fmt.Sprintf("member %s would exceed %d unique sport participations", reg, MaxParticipations))
		}
		if len(captains) == 1 && reg == captains[0] {
			if quota.TeamsAsCaptain+1 > quota.CaptainRoles {
				violations = append(violations, fmt.Sprintf("captain %s cannot create more teams than captain roles held", reg))
			}
		}
	}

	return violations
}

// ValidateEnrollment evaluates the individual-enrollment preconditions and
// returns the full list of violations.
func ValidateEnrollment(sport models.Sport, reg string, quota QuotaSnapshot) []string {
	violations := make([]string, 0)

	if sport.Type.IsTeam() {
		violations = append(violations, fmt.Sprintf("sport %q is not a player sport", sport.SportName))
	}
	if sport.IsEnrolled(reg) {
		violations = append(violations, fmt.Sprintf("player %s is already enrolled", reg))
	}
	if sport.IsCoordinator(reg) {
		violations = append(violations, fmt.Sprintf("player %s coordinates this sport and cannot compete in it", reg))
	}
	if quota.CaptainRoles+quota.IndividualEntries+1 > MaxParticipations {
		violations = append(violations, fmt.Sprintf("player %s exceeds the participation quota of %d", reg, MaxParticipations))
	}
	if quota.SportsJoined+1 > MaxParticipations {
		violations = append(violations, fmt.Sprintf("player %s would exceed %d unique sport participations", reg, MaxParticipations))
	}

	return violations
}

// ValidateReplacement checks swapping oldReg for newReg on a team. The
// captain is immutable; the incoming member must keep the team homogeneous
// and must not already play for another team of the sport.
func ValidateReplacement(sport models.Sport, team models.Team, oldReg, newReg string, entry *RosterEntry, quota QuotaSnapshot) []string {
	violations := make([]string, 0)

	if oldReg == team.CaptainReg {
		violations = append(violations, "team captain cannot be replaced")
	}
	if !team.HasMember(oldReg) {
		violations = append(violations, fmt.Sprintf("player %s is not a member of team %q", oldReg, team.TeamName))
	}
	if team.HasMember(newReg) {
		violations = append(violations, fmt.Sprintf("player %s is already a member of team %q", newReg, team.TeamName))
	}
	if entry == nil {
		violations = append(violations, fmt.Sprintf("player %s is not in the roster", newReg))
		return violations
	}
	if other := sport.TeamOf(newReg); other != nil && other.ID != team.ID {
		violations = append(violations, fmt.Sprintf("player %s already belongs to team %q in this sport", newReg, other.TeamName))
	}
	if sport.IsCoordinator(newReg) {
		violations = append(violations, fmt.Sprintf("player %s coordinates this sport and cannot compete in it", newReg))
	}
	if entry.Gender != team.Gender {
		violations = append(violations, fmt.Sprintf("player %s gender does not match the team", newReg))
	}
	if entry.BatchYear != team.BatchYear {
		violations = append(violations, fmt.Sprintf("player %s batch year does not match the team", newReg))
	}
	if quota.SportsJoined+1 > MaxParticipations {
		violations = append(violations, fmt.Sprintf("player %s would exceed %d unique sport participations", newReg, MaxParticipations))
	}

	return violations
}
