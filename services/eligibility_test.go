// file: services/eligibility_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsfest/models"
)

func newMatch(mtype models.MatchType, status models.MatchStatus, gender models.Gender, winner string, sides ...string) models.Match {
	m := models.Match{Type: mtype, Status: status, Gender: gender}
	if winner != "" {
		m.Winner = &winner
	}
	for i, name := range sides {
		m.Participant = append(m.Participant, models.MatchParticipant{Position: i + 1, Name: name})
	}
	return m
}

func withQualifiers(m models.Match, qualifiers ...string) models.Match {
	set := make(map[string]bool, len(qualifiers))
	for _, q := range qualifiers {
		set[q] = true
	}
	for i := range m.Participant {
		m.Participant[i].Qualified = set[m.Participant[i].Name]
	}
	return m
}

func TestKnockedOutSet(t *testing.T) {
	t.Run("dual completed knockout eliminates the non-winner", func(t *testing.T) {
		matches := []models.Match{
			newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "P1", "P1", "P2"),
		}
		out := KnockedOutSet(models.SportDualPlayer, matches, models.GenderMale)
		assert.True(t, out["P2"])
		assert.False(t, out["P1"])
	})

	t.Run("completed match without a winner eliminates nobody", func(t *testing.T) {
		matches := []models.Match{
			newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "", "P1", "P2"),
		}
		out := KnockedOutSet(models.SportDualPlayer, matches, models.GenderMale)
		assert.Empty(t, out)
	})

	t.Run("league matches never eliminate", func(t *testing.T) {
		matches := []models.Match{
			newMatch(models.MatchLeague, models.MatchStatusCompleted, models.GenderMale, "P1", "P1", "P2"),
		}
		out := KnockedOutSet(models.SportDualPlayer, matches, models.GenderMale)
		assert.Empty(t, out)
	})

	t.Run("other gender partition is independent", func(t *testing.T) {
		matches := []models.Match{
			newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderFemale, "P3", "P3", "P4"),
		}
		out := KnockedOutSet(models.SportDualPlayer, matches, models.GenderMale)
		assert.Empty(t, out)
	})

	t.Run("multi match eliminates non-qualifiers", func(t *testing.T) {
		m := newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "", "P1", "P2", "P3", "P4")
		matches := []models.Match{withQualifiers(m, "P1", "P3")}
		out := KnockedOutSet(models.SportMultiPlayer, matches, models.GenderMale)
		assert.False(t, out["P1"])
		assert.True(t, out["P2"])
		assert.False(t, out["P3"])
		assert.True(t, out["P4"])
	})

	t.Run("multi match without qualifiers eliminates everyone", func(t *testing.T) {
		matches := []models.Match{
			newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "", "P1", "P2", "P3"),
		}
		out := KnockedOutSet(models.SportMultiPlayer, matches, models.GenderMale)
		assert.Len(t, out, 3)
	})
}

func TestInScheduledSet(t *testing.T) {
	matches := []models.Match{
		newMatch(models.MatchKnockout, models.MatchStatusScheduled, models.GenderMale, "", "P1", "P2"),
		newMatch(models.MatchFinal, models.MatchStatusScheduled, models.GenderFemale, "", "P5", "P6"),
		newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "P3", "P3", "P4"),
		newMatch(models.MatchLeague, models.MatchStatusScheduled, models.GenderMale, "", "P7", "P8"),
	}

	pending := InScheduledSet(matches, models.GenderMale)
	assert.True(t, pending["P1"])
	assert.True(t, pending["P2"])
	assert.False(t, pending["P3"], "completed matches do not hold a slot")
	assert.False(t, pending["P5"], "other gender partition")
	assert.False(t, pending["P7"], "league matches do not hold a bracket slot")
}

func TestActiveParticipants(t *testing.T) {
	registered := []string{"P4", "P1", "P2", "P3", "P5"}
	matches := []models.Match{
		newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "P1", "P1", "P2"),
		newMatch(models.MatchKnockout, models.MatchStatusScheduled, models.GenderMale, "", "P3", "P4"),
	}

	active := ActiveParticipants(models.SportDualPlayer, registered, matches, models.GenderMale)
	assert.Equal(t, []string{"P1", "P5"}, active)
}

func TestOpenFinalExists(t *testing.T) {
	t.Run("scheduled final blocks", func(t *testing.T) {
		matches := []models.Match{newMatch(models.MatchFinal, models.MatchStatusScheduled, models.GenderMale, "", "A", "B")}
		assert.True(t, OpenFinalExists(matches))
	})
	t.Run("completed final blocks", func(t *testing.T) {
		matches := []models.Match{newMatch(models.MatchFinal, models.MatchStatusCompleted, models.GenderMale, "A", "A", "B")}
		assert.True(t, OpenFinalExists(matches))
	})
	t.Run("cancelled final reopens scheduling", func(t *testing.T) {
		matches := []models.Match{newMatch(models.MatchFinal, models.MatchStatusCancelled, models.GenderMale, "", "A", "B")}
		assert.False(t, OpenFinalExists(matches))
	})
	t.Run("drawn final reopens scheduling", func(t *testing.T) {
		matches := []models.Match{newMatch(models.MatchFinal, models.MatchStatusDraw, models.GenderMale, "", "A", "B")}
		assert.False(t, OpenFinalExists(matches))
	})
	t.Run("knockouts do not block", func(t *testing.T) {
		matches := []models.Match{newMatch(models.MatchKnockout, models.MatchStatusScheduled, models.GenderMale, "", "A", "B")}
		assert.False(t, OpenFinalExists(matches))
	})
}

func TestMustBeFinal(t *testing.T) {
	t.Run("last two active participants of a dual sport force the final", func(t *testing.T) {
		assert.True(t, MustBeFinal(models.SportDualPlayer, []string{"P1", "P5"}, []string{"P5", "P1"}))
	})
	t.Run("more than two active never forces", func(t *testing.T) {
		assert.False(t, MustBeFinal(models.SportDualPlayer, []string{"P1", "P2", "P3"}, []string{"P1", "P2"}))
	})
	t.Run("different pairing does not force", func(t *testing.T) {
		assert.False(t, MustBeFinal(models.SportDualPlayer, []string{"P1", "P2"}, []string{"P1", "P3"}))
	})
	t.Run("multi types never force a final", func(t *testing.T) {
		assert.False(t, MustBeFinal(models.SportMultiPlayer, []string{"P1", "P2"}, []string{"P1", "P2"}))
	})
}

func TestDeriveGender(t *testing.T) {
	entries := []RosterEntry{
		{RegNumber: "P1", Gender: models.GenderFemale},
		{RegNumber: "P2", Gender: models.GenderFemale},
	}
	gender, ok := DeriveGender(entries)
	require.True(t, ok)
	assert.Equal(t, models.GenderFemale, gender)

	_, ok = DeriveGender(nil)
	assert.False(t, ok)
}

// Chess scenario: P1/P2 male and P3/P4 female enrolled, P1 knocks out P2,
// then only P1 and P5 remain active among the men.
func TestDualPlayerBracketScenario(t *testing.T) {
	registered := []string{"P1", "P2", "P5"}
	matches := []models.Match{
		newMatch(models.MatchKnockout, models.MatchStatusCompleted, models.GenderMale, "P1", "P1", "P2"),
	}

	active := ActiveParticipants(models.SportDualPlayer, registered, matches, models.GenderMale)
	require.Equal(t, []string{"P1", "P5"}, active)

	knockout := ValidateBracketPlacement(models.SportDualPlayer, models.MatchKnockout, active, []string{"P1", "P5"})
	assert.NotEmpty(t, knockout, "knockout between the last two must be rejected")

	final := ValidateBracketPlacement(models.SportDualPlayer, models.MatchFinal, active, []string{"P1", "P5"})
	assert.Empty(t, final, "the same pairing as a final is accepted")

	eliminated := ValidateBracketPlacement(models.SportDualPlayer, models.MatchKnockout, active, []string{"P1", "P2"})
	assert.NotEmpty(t, eliminated, "an eliminated player cannot be scheduled again")
}
