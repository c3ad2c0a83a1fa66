// file: services/eligibility.go
package services

import (
	"sort"

	"sportsfest/models"
)

// Knockout eligibility is a pure derivation over a sport's match history.
// Nothing here is cached as mutable state; callers recompute inside the same
// transaction that gates the write.

// eliminationMatches filters a sport's history down to knockout/final
// matches of one gender partition.
func eliminationMatches(matches []models.Match, gender models.Gender) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Gender == gender && m.Type.Elimination() {
			out = append(out, m)
		}
	}
	return out
}

// KnockedOutSet derives which participants have been eliminated in a gender
// partition. For dual sports the non-winner of a completed elimination match
// is out. For multi sports every participant missing from the qualifiers is
// out; a completed match with no qualifiers declared eliminates all of its
// participants.
func KnockedOutSet(sportType models.SportType, matches []models.Match, gender models.Gender) map[string]bool {
	out := make(map[string]bool)
	for _, m := range eliminationMatches(matches, gender) {
		if m.Status != models.MatchStatusCompleted {
			continue
		}
		if sportType.IsDual() {
			if m.Winner == nil {
				continue
			}
			for _, p := range m.Participant {
				if p.Name != *m.Winner {
					out[p.Name] = true
				}
			}
		} else {
			for _, p := range m.Participant {
				if !p.Qualified {
					out[p.Name] = true
				}
			}
		}
	}
	return out
}

// InScheduledSet derives which participants are already committed to a
// pending elimination match in a gender partition. They hold a bracket slot
// and cannot be placed into a second one.
func InScheduledSet(matches []models.Match, gender models.Gender) map[string]bool {
	out := make(map[string]bool)
	for _, m := range eliminationMatches(matches, gender) {
		if m.Status != models.MatchStatusScheduled {
			continue
		}
		for _, p := range m.Participant {
			out[p.Name] = true
		}
	}
	return out
}

// ActiveParticipants returns the registered participants of one gender
// partition that are neither knocked out nor already holding a scheduled
// bracket slot, sorted for stable output.
func ActiveParticipants(sportType models.SportType, registered []string, matches []models.Match, gender models.Gender) []string {
	knocked := KnockedOutSet(sportType, matches, gender)
	pending := InScheduledSet(matches, gender)

	active := make([]string, 0, len(registered))
	for _, name := range registered {
		if !knocked[name] && !pending[name] {
			active = append(active, name)
		}
	}
	sort.Strings(active)
	return active
}

// OpenFinalExists reports whether the sport has a final in scheduled or
// completed status. While one exists no further match of any type may be
// created; a final resolved to draw or cancelled reopens scheduling.
func OpenFinalExists(matches []models.Match) bool {
	for _, m := range matches {
		if m.Type != models.MatchFinal {
			continue
		}
		if m.Status == models.MatchStatusScheduled || m.Status == models.MatchStatusCompleted {
			return true
		}
	}
	return false
}

// MustBeFinal reports whether a proposed elimination match is the forced
// final: a dual-type sport whose gender partition is down to exactly two
// active participants, both of which are the proposed sides. Multi types
// never force a final; that asymmetry is intentional.
func MustBeFinal(sportType models.SportType, active []string, participants []string) bool {
	if !sportType.IsDual() {
		return false
	}
	if len(active) != 2 || len(participants) != 2 {
		return false
	}
	set := map[string]bool{active[0]: true, active[1]: true}
	return set[participants[0]] && set[participants[1]]
}

// DeriveGender returns the gender of a participant list by taking the first
// entry as representative. Team and enrollment homogeneity guarantees every
// participant of a valid side shares one gender, so this is exact.
func DeriveGender(entries []RosterEntry) (models.Gender, bool) {
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Gender, true
}
