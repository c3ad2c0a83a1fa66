// file: services/match_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sportsfest/models"
)

// MatchService owns the match lifecycle: creation, status transitions,
// winner and qualifier declaration, deletion. Creation runs under the sport
// row lock so match numbers stay strictly increasing and the eligibility
// derivation is never staler than the write it gates.
type MatchService struct {
	db       *gorm.DB
	roster   RosterDirectory
	calendar EventCalendar
}

func NewMatchService(db *gorm.DB, roster RosterDirectory, calendar EventCalendar) *MatchService {
	return &MatchService{db: db, roster: roster, calendar: calendar}
}

func loadMatch(tx *gorm.DB, matchID uint32) (*models.Match, error) {
	var match models.Match
	if err := tx.Preload("Participant").First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func loadSportMatches(tx *gorm.DB, sportID uint32) ([]models.Match, error) {
	var matches []models.Match
	err := tx.Where("sport_id = ?", sportID).
		Preload("Participant").
		Order("match_number asc").
		Find(&matches).Error
	return matches, err
}

// sideEntries resolves each proposed side to a roster entry: a team's
// captain for team sports, the player themselves for player sports.
// Unresolvable sides become violations.
func (s *MatchService) sideEntries(sport *models.Sport, participants []string) ([]RosterEntry, []string) {
	violations := make([]string, 0)
	entries := make([]RosterEntry, 0, len(participants))

	for _, name := range participants {
		if sport.Type.IsTeam() {
			team := sport.TeamByName(name)
			if team == nil {
				violations = append(violations, fmt.Sprintf("team %q is not registered for this sport", name))
				continue
			}
			entry, err := s.roster.Resolve(team.CaptainReg)
			if err != nil {
				violations = append(violations, fmt.Sprintf("captain of team %q is not in the roster", name))
				continue
			}
			entries = append(entries, *entry)
		} else {
			if !sport.IsEnrolled(name) {
				violations = append(violations, fmt.Sprintf("player %s is not enrolled in this sport", name))
				continue
			}
			entry, err := s.roster.Resolve(name)
			if err != nil {
				violations = append(violations, fmt.Sprintf("player %s is not in the roster", name))
				continue
			}
			entries = append(entries, *entry)
		}
	}
	return entries, violations
}

// registeredOfGender lists every registered participant of one gender
// partition: team names for team sports, registration numbers otherwise.
func (s *MatchService) registeredOfGender(sport *models.Sport, gender models.Gender) ([]string, error) {
	if sport.Type.IsTeam() {
		names := make([]string, 0, len(sport.Teams))
		for _, t := range sport.Teams {
			if t.Gender == gender {
				names = append(names, t.TeamName)
			}
		}
		return names, nil
	}

	regs := make([]string, 0, len(sport.Entries))
	for _, e := range sport.Entries {
		regs = append(regs, e.RegNumber)
	}
	roster, err := s.roster.ResolveAll(regs)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(regs))
	for _, reg := range regs {
		if entry, ok := roster[reg]; ok && entry.Gender == gender {
			names = append(names, reg)
		}
	}
	return names, nil
}

// Create validates and schedules a new match. All rule failures are
// collected into one ValidationError; nothing is written unless every check
// passes.
func (s *MatchService) Create(sportID uint32, matchType models.MatchType, matchDate time.Time, participants []string, now time.Time) (*models.Match, error) {
	if !matchType.Valid() {
		return nil, &ValidationError{Violations: []string{fmt.Sprintf("unknown match type %q", matchType)}}
	}

	var created *models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		window, err := s.calendar.ActiveWindow(sport.EventID)
		if err != nil {
			return err
		}

		violations := make([]string, 0)
		violations = append(violations, ValidateMatchDate(matchDate, now, *window)...)
		violations = append(violations, ValidateMatchKind(sport.Type, matchType)...)
		violations = append(violations, ValidateMatchShape(sport.Type, participants)...)

		entries, sideViolations := s.sideEntries(sport, participants)
		violations = append(violations, sideViolations...)

		gender, ok := DeriveGender(entries)
		if ok {
			for _, entry := range entries[1:] {
				if entry.Gender != gender {
					violations = append(violations, "participants are not all in the same gender partition")
					break
				}
			}
		}

		matches, err := loadSportMatches(tx, sportID)
		if err != nil {
			return err
		}
		if OpenFinalExists(matches) {
			violations = append(violations, "a final match is already open for this sport")
		}
		if ok && matchType.Elimination() {
			registered, err := s.registeredOfGender(sport, gender)
			if err != nil {
				return err
			}
			active := ActiveParticipants(sport.Type, registered, matches, gender)
			violations = append(violations, ValidateBracketPlacement(sport.Type, matchType, active, participants)...)
		}

		if len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}

		number := AllocateMatchNumber(sport)
		err = tx.Model(&models.Sport{}).
			Where("id = ?", sportID).
			Update("next_match_number", sport.NextMatchNumber).Error
		if err != nil {
			return err
		}

		match := models.Match{
			SportID:     sportID,
			MatchNumber: number,
			Type:        matchType,
			Gender:      gender,
			MatchDate:   matchDate,
			Status:      models.MatchStatusScheduled,
		}
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		for i, name := range participants {
			side := models.MatchParticipant{MatchID: match.ID, Position: i + 1, Name: name}
			if err := tx.Create(&side).Error; err != nil {
				return err
			}
			match.Participant = append(match.Participant, side)
		}
		created = &match
		InvalidateSportCaches(sportID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateStatus moves a scheduled match into one of its terminal states.
// Allowed only on or after the match date.
func (s *MatchService) UpdateStatus(matchID uint32, status models.MatchStatus, now time.Time) (*models.Match, error) {
	if !status.Valid() || status == models.MatchStatusScheduled {
		return nil, &ValidationError{Violations: []string{fmt.Sprintf("invalid target status %q", status)}}
	}

	var updated *models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		match, err := loadMatch(tx, matchID)
		if err != nil {
			return err
		}
		if now.Before(match.MatchDate) {
			return ErrMatchDateNotReached
		}
		if !CanTransition(match.Status, status) {
			return ErrMatchNotScheduled
		}
		if err := tx.Model(match).Update("status", status).Error; err != nil {
			return err
		}
		match.Status = status
		updated = match
		InvalidateSportCaches(match.SportID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeclareWinner records the winner of a completed dual-type match. The
// non-winner is implicitly the loser for bracket derivation.
func (s *MatchService) DeclareWinner(matchID uint32, winner string) (*models.Match, error) {
	var updated *models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		match, err := loadMatch(tx, matchID)
		if err != nil {
			return err
		}
		sport, err := lockSport(tx, match.SportID)
		if err != nil {
			return err
		}
		if !sport.Type.IsDual() {
			return ErrWinnerMultiMatch
		}
		if match.Status != models.MatchStatusCompleted {
			return ErrWinnerRequiresDone
		}
		if !match.HasParticipant(winner) {
			return ErrWinnerNotInMatch
		}
		if err := tx.Model(match).Update("winner", winner).Error; err != nil {
			return err
		}
		match.Winner = &winner
		updated = match
		InvalidateSportCaches(match.SportID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeclareQualifiers records which participants survive a completed
// multi-type match; everyone absent from the list is eliminated.
func (s *MatchService) DeclareQualifiers(matchID uint32, qualifiers []string) (*models.Match, error) {
	var updated *models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		match, err := loadMatch(tx, matchID)
		if err != nil {
			return err
		}
		sport, err := lockSport(tx, match.SportID)
		if err != nil {
			return err
		}
		if sport.Type.IsDual() {
			return ErrQualifiersDualMatch
		}
		if match.Status != models.MatchStatusCompleted {
			return ErrWinnerRequiresDone
		}
		qualified := make(map[string]bool, len(qualifiers))
		for _, name := range qualifiers {
			if !match.HasParticipant(name) {
				return ErrQualifierNotInMatch
			}
			qualified[name] = true
		}
		for i := range match.Participant {
			p := &match.Participant[i]
			err := tx.Model(&models.MatchParticipant{}).
				Where("id = ?", p.ID).
				Update("qualified", qualified[p.Name]).Error
			if err != nil {
				return err
			}
			p.Qualified = qualified[p.Name]
		}
		updated = match
		InvalidateSportCaches(match.SportID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a match that is still scheduled. Resolved matches are part
// of bracket history and stay.
func (s *MatchService) Delete(matchID uint32) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		match, err := loadMatch(tx, matchID)
		if err != nil {
			return err
		}
		if !CanDelete(match.Status) {
			return ErrMatchNotScheduled
		}
		if err := tx.Where("match_id = ?", matchID).Delete(&models.MatchParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Match{}, matchID).Error; err != nil {
			return err
		}
		InvalidateSportCaches(match.SportID)
		return nil
	})
}

// ListBySport returns the sport's matches in schedule order.
func (s *MatchService) ListBySport(sportID uint32) ([]models.Match, error) {
	return loadSportMatches(s.db, sportID)
}

// ActiveForSport derives the currently active participants of one
// sport-gender partition.
func (s *MatchService) ActiveForSport(sportID uint32, gender models.Gender) ([]string, error) {
	var sport models.Sport
	err := s.db.Preload("Teams.Members").Preload("Entries").First(&sport, sportID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	matches, err := loadSportMatches(s.db, sportID)
	if err != nil {
		return nil, err
	}
	registered, err := s.registeredOfGender(&sport, gender)
	if err != nil {
		return nil, err
	}
	return ActiveParticipants(sport.Type, registered, matches, gender), nil
}
