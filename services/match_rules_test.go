// file: services/match_rules_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sportsfest/models"
)

func festWindow() Window {
	return Window{
		RegistrationStart: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		RegistrationEnd:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		EventStart:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EventEnd:          time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestCanTransition(t *testing.T) {
	terminal := []models.MatchStatus{
		models.MatchStatusCompleted,
		models.MatchStatusDraw,
		models.MatchStatusCancelled,
	}

	for _, to := range terminal {
		assert.True(t, CanTransition(models.MatchStatusScheduled, to), "scheduled -> %s", to)
	}
	assert.False(t, CanTransition(models.MatchStatusScheduled, models.MatchStatusScheduled))

	// Terminal states admit no further transition.
	for _, from := range terminal {
		for _, to := range append(terminal, models.MatchStatusScheduled) {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestAllocateMatchNumber(t *testing.T) {
	sport := models.Sport{Type: models.SportDualTeam, NextMatchNumber: 1}

	first := AllocateMatchNumber(&sport)
	second := AllocateMatchNumber(&sport)
	assert.Equal(t, uint(1), first)
	assert.Equal(t, uint(2), second)

	// Deleting a scheduled match leaves the counter untouched, so the
	// deleted fixture's number is never handed out again.
	third := AllocateMatchNumber(&sport)
	assert.Equal(t, uint(3), third)
	assert.Equal(t, uint(4), sport.NextMatchNumber)

	t.Run("unmigrated zero counter starts at one", func(t *testing.T) {
		fresh := models.Sport{Type: models.SportDualPlayer}
		assert.Equal(t, uint(1), AllocateMatchNumber(&fresh))
		assert.Equal(t, uint(2), fresh.NextMatchNumber)
	})
}

func TestCanDelete(t *testing.T) {
	assert.True(t, CanDelete(models.MatchStatusScheduled))
	assert.False(t, CanDelete(models.MatchStatusCompleted))
	assert.False(t, CanDelete(models.MatchStatusDraw))
	assert.False(t, CanDelete(models.MatchStatusCancelled))
}

func TestValidateMatchDate(t *testing.T) {
	window := festWindow()
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("date inside the window passes", func(t *testing.T) {
		assert.Empty(t, ValidateMatchDate(time.Date(2026, 2, 5, 15, 0, 0, 0, time.UTC), now, window))
	})
	t.Run("past date is rejected", func(t *testing.T) {
		assert.NotEmpty(t, ValidateMatchDate(now.Add(-time.Hour), now, window))
	})
	t.Run("date after the event window is rejected", func(t *testing.T) {
		assert.NotEmpty(t, ValidateMatchDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), now, window))
	})
}

func TestValidateMatchShape(t *testing.T) {
	t.Run("dual match needs exactly two sides", func(t *testing.T) {
		assert.Empty(t, ValidateMatchShape(models.SportDualTeam, []string{"A", "B"}))
		assert.NotEmpty(t, ValidateMatchShape(models.SportDualTeam, []string{"A"}))
		assert.NotEmpty(t, ValidateMatchShape(models.SportDualTeam, []string{"A", "B", "C"}))
	})
	t.Run("multi match needs at least three sides", func(t *testing.T) {
		assert.Empty(t, ValidateMatchShape(models.SportMultiPlayer, []string{"A", "B", "C"}))
		assert.NotEmpty(t, ValidateMatchShape(models.SportMultiPlayer, []string{"A", "B"}))
	})
	t.Run("participants must be distinct, case-insensitively", func(t *testing.T) {
		assert.NotEmpty(t, ValidateMatchShape(models.SportDualTeam, []string{"Strikers", "strikers"}))
	})
	t.Run("blank participant is rejected", func(t *testing.T) {
		assert.NotEmpty(t, ValidateMatchShape(models.SportDualTeam, []string{"A", "  "}))
	})
}

func TestValidateMatchKind(t *testing.T) {
	t.Run("league is undefined for multi formats", func(t *testing.T) {
		assert.NotEmpty(t, ValidateMatchKind(models.SportMultiTeam, models.MatchLeague))
		assert.NotEmpty(t, ValidateMatchKind(models.SportMultiPlayer, models.MatchLeague))
	})
	t.Run("league is fine for dual formats", func(t *testing.T) {
		assert.Empty(t, ValidateMatchKind(models.SportDualTeam, models.MatchLeague))
		assert.Empty(t, ValidateMatchKind(models.SportDualPlayer, models.MatchLeague))
	})
	t.Run("knockout and final are fine everywhere", func(t *testing.T) {
		for _, st := range []models.SportType{models.SportDualTeam, models.SportMultiTeam, models.SportDualPlayer, models.SportMultiPlayer} {
			assert.Empty(t, ValidateMatchKind(st, models.MatchKnockout))
			assert.Empty(t, ValidateMatchKind(st, models.MatchFinal))
		}
	})
}

func TestValidateBracketPlacement(t *testing.T) {
	active := []string{"A", "B", "C", "D"}

	t.Run("league matches are not bracket-gated", func(t *testing.T) {
		assert.Empty(t, ValidateBracketPlacement(models.SportDualTeam, models.MatchLeague, active, []string{"A", "Z"}))
	})
	t.Run("inactive participant is rejected", func(t *testing.T) {
		violations := ValidateBracketPlacement(models.SportDualTeam, models.MatchKnockout, active, []string{"A", "Z"})
		assert.NotEmpty(t, violations)
	})
	t.Run("active participants pass", func(t *testing.T) {
		assert.Empty(t, ValidateBracketPlacement(models.SportDualTeam, models.MatchKnockout, active, []string{"A", "B"}))
	})
	t.Run("knockout between the final pair is forced to be the final", func(t *testing.T) {
		lastTwo := []string{"A", "B"}
		assert.NotEmpty(t, ValidateBracketPlacement(models.SportDualTeam, models.MatchKnockout, lastTwo, lastTwo))
		assert.Empty(t, ValidateBracketPlacement(models.SportDualTeam, models.MatchFinal, lastTwo, lastTwo))
	})
	t.Run("multi formats have no forced final", func(t *testing.T) {
		lastTwo := []string{"A", "B"}
		violations := ValidateBracketPlacement(models.SportMultiTeam, models.MatchKnockout, lastTwo, lastTwo)
		assert.Empty(t, violations)
	})
}
