// file: services/match_rules.go
package services

import (
	"fmt"
	"strings"
	"time"

	"sportsfest/models"
)

// Pure match-scheduling checks. The service loads state under the sport
// lock and feeds it through these.

// CanTransition reports whether a status change is allowed. Scheduled is
// the only non-terminal state.
func CanTransition(from, to models.MatchStatus) bool {
	if from != models.MatchStatusScheduled {
		return false
	}
	switch to {
	case models.MatchStatusCompleted, models.MatchStatusDraw, models.MatchStatusCancelled:
		return true
	}
	return false
}

// ValidateMatchDate gates the proposed date: not in the past at submission
// time and inside the event window.
func ValidateMatchDate(date, now time.Time, window Window) []string {
	violations := make([]string, 0)
	if date.Before(now) {
		violations = append(violations, "match date is in the past")
	}
	if date.Before(window.EventStart) || date.After(window.EventEnd) {
		violations = append(violations, "match date falls outside the event window")
	}
	return violations
}

// ValidateMatchShape checks structural correctness of the participant list
// for the sport type: two sides for dual types, at least three for multi
// types, all distinct (case-insensitive, matching team-name uniqueness).
func ValidateMatchShape(sportType models.SportType, participants []string) []string {
	violations := make([]string, 0)

	if sportType.IsDual() {
		if len(participants) != 2 {
			violations = append(violations, fmt.Sprintf("dual matches need exactly 2 participants, got %d", len(participants)))
		}
	} else {
		if len(participants) < 3 {
			violations = append(violations, fmt.Sprintf("multi matches need at least 3 participants, got %d", len(participants)))
		}
	}

	seen := make(map[string]bool, len(participants))
	for _, name := range participants {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			violations = append(violations, "participant name is empty")
			continue
		}
		if seen[key] {
			violations = append(violations, fmt.Sprintf("participant %q is listed more than once", name))
		}
		seen[key] = true
	}

	return violations
}

// ValidateMatchKind rejects match types undefined for the sport: leagues do
// not exist for multi-participant formats.
func ValidateMatchKind(sportType models.SportType, matchType models.MatchType) []string {
	if matchType == models.MatchLeague && !sportType.IsDual() {
		return []string{fmt.Sprintf("league matches are not defined for %s sports", sportType)}
	}
	return nil
}

// AllocateMatchNumber hands out the sport's next match number and advances
// the counter. Callers hold the sport row lock and persist the advanced
// counter in the same transaction, so numbers are strictly increasing per
// sport and never reused, even after a scheduled match is deleted.
func AllocateMatchNumber(sport *models.Sport) uint {
	n := sport.NextMatchNumber
	if n == 0 {
		n = 1
	}
	sport.NextMatchNumber = n + 1
	return n
}

// CanDelete reports whether a match may still be removed from the schedule.
// Resolved matches are bracket history and stay.
func CanDelete(status models.MatchStatus) bool {
	return status == models.MatchStatusScheduled
}

// ValidateBracketPlacement checks elimination scheduling against the
// resolver's active set: every side must still be active, and when a dual
// partition is down to its last two, the match between them must be the
// final.
func ValidateBracketPlacement(sportType models.SportType, matchType models.MatchType, active []string, participants []string) []string {
	if !matchType.Elimination() {
		return nil
	}

	violations := make([]string, 0)
	activeSet := make(map[string]bool, len(active))
	for _, name := range active {
		activeSet[name] = true
	}
	for _, name := range participants {
		if !activeSet[name] {
			violations = append(violations, fmt.Sprintf("participant %q is eliminated or already scheduled in this bracket", name))
		}
	}

	if matchType == models.MatchKnockout && MustBeFinal(sportType, active, participants) {
		violations = append(violations, "only two active participants remain; this match must be scheduled as the final")
	}

	return violations
}
