// file: services/participation_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportsfest/models"
)

// ParticipationService owns every mutation of the sport catalog: captain and
// coordinator sets, individual enrollment, and team lifecycle. Every
// operation locks the sport row for the whole validate-then-commit sequence
// so concurrent requests against the same sport serialize.
type ParticipationService struct {
	db       *gorm.DB
	roster   RosterDirectory
	calendar EventCalendar
}

func NewParticipationService(db *gorm.DB, roster RosterDirectory, calendar EventCalendar) *ParticipationService {
	return &ParticipationService{db: db, roster: roster, calendar: calendar}
}

// lockSport loads the sport with its participation sets under FOR UPDATE.
func lockSport(tx *gorm.DB, sportID uint32) (*models.Sport, error) {
	var sport models.Sport
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Captains").
		Preload("Coordinators").
		Preload("Teams.Members").
		Preload("Entries").
		First(&sport, sportID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	return &sport, nil
}

// quotaFor builds one player's participation counters from current state.
func quotaFor(tx *gorm.DB, reg string) (QuotaSnapshot, error) {
	var quota QuotaSnapshot

	var captainRoles int64
	if err := tx.Model(&models.SportCaptain{}).Where("reg_number = ?", reg).Count(&captainRoles).Error; err != nil {
		return quota, err
	}
	var entries int64
	if err := tx.Model(&models.IndividualEntry{}).Where("reg_number = ?", reg).Count(&entries).Error; err != nil {
		return quota, err
	}
	var teamsAsCaptain int64
	if err := tx.Model(&models.Team{}).Where("captain_reg = ?", reg).Count(&teamsAsCaptain).Error; err != nil {
		return quota, err
	}

	var teamSports []uint32
	err := tx.Model(&models.Team{}).
		Joins("JOIN sportsfest_team_member tm ON tm.team_id = sportsfest_team.id").
		Where("tm.reg_number = ?", reg).
		Distinct().
		Pluck("sportsfest_team.sport_id", &teamSports).Error
	if err != nil {
		return quota, err
	}
	var entrySports []uint32
	if err := tx.Model(&models.IndividualEntry{}).Where("reg_number = ?", reg).Pluck("sport_id", &entrySports).Error; err != nil {
		return quota, err
	}
	joined := make(map[uint32]bool, len(teamSports)+len(entrySports))
	for _, id := range teamSports {
		joined[id] = true
	}
	for _, id := range entrySports {
		joined[id] = true
	}

	quota.CaptainRoles = int(captainRoles)
	quota.IndividualEntries = int(entries)
	quota.TeamsAsCaptain = int(teamsAsCaptain)
	quota.SportsJoined = len(joined)
	return quota, nil
}

// registrationOpen gates enrollment and team creation on the event's
// registration window.
func (s *ParticipationService) registrationOpen(eventID uint32, now time.Time) (bool, error) {
	window, err := s.calendar.ActiveWindow(eventID)
	if err != nil {
		return false, err
	}
	return !now.Before(window.RegistrationStart) && !now.After(window.RegistrationEnd), nil
}

// AssignCaptain adds reg to the sport's eligible-captain set.
func (s *ParticipationService) AssignCaptain(sportID uint32, reg string) error {
	if _, err := s.roster.Resolve(reg); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		if !sport.Type.IsTeam() {
			return ErrNotTeamSport
		}
		if sport.IsEligibleCaptain(reg) {
			return ErrAlreadyCaptain
		}
		if sport.IsCoordinator(reg) {
			return ErrCoordinatorConflict
		}
		for _, t := range sport.Teams {
			if t.CaptainReg == reg {
				return ErrCaptainHasTeam
			}
		}
		quota, err := quotaFor(tx, reg)
		if err != nil {
			return err
		}
		if quota.CaptainRoles+1+quota.IndividualEntries > MaxParticipations {
			return &ValidationError{Violations: []string{"captain role would exceed the participation quota"}}
		}
		if err := tx.Create(&models.SportCaptain{SportID: sportID, RegNumber: reg}).Error; err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}

// RemoveCaptain removes reg from the eligible-captain set. The role is
// structurally required while the captain's team exists.
func (s *ParticipationService) RemoveCaptain(sportID uint32, reg string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		if !sport.IsEligibleCaptain(reg) {
			return ErrNotCaptain
		}
		for _, t := range sport.Teams {
			if t.CaptainReg == reg {
				return ErrCaptainHasTeam
			}
		}
		if err := tx.Where("sport_id = ? AND reg_number = ?", sportID, reg).Delete(&models.SportCaptain{}).Error; err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}

// AssignCoordinator grants reg operational rights over the sport.
// Coordinators must be disjoint from the sport's competitors.
func (s *ParticipationService) AssignCoordinator(sportID uint32, reg string) error {
	if _, err := s.roster.Resolve(reg); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		if sport.IsCoordinator(reg) {
			return ErrAlreadyCoordinator
		}
		if sport.IsEligibleCaptain(reg) || sport.IsEnrolled(reg) || sport.TeamOf(reg) != nil {
			return ErrCoordinatorConflict
		}
		if err := tx.Create(&models.SportCoordinator{SportID: sportID, RegNumber: reg}).Error; err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}

func (s *ParticipationService) RemoveCoordinator(sportID uint32, reg string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		if !sport.IsCoordinator(reg) {
			return ErrNotCoordinator
		}
		if err := tx.Where("sport_id = ? AND reg_number = ?", sportID, reg).Delete(&models.SportCoordinator{}).Error; err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}

// IsCoordinator is the membership check used for authorization decisions.
func (s *ParticipationService) IsCoordinator(sportID uint32, reg string) (bool, error) {
	var count int64
	err := s.db.Model(&models.SportCoordinator{}).
		Where("sport_id = ? AND reg_number = ?", sportID, reg).
		Count(&count).Error
	return count > 0, err
}

// Enroll registers a player individually in a player-type sport.
func (s *ParticipationService) Enroll(sportID uint32, reg string, now time.Time) error {
	if _, err := s.roster.Resolve(reg); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		open, err := s.registrationOpen(sport.EventID, now)
		if err != nil {
			return err
		}
		if !open {
			return &ValidationError{Violations: []string{"registration window is closed for this event"}}
		}
		quota, err := quotaFor(tx, reg)
		if err != nil {
			return err
		}
		if violations := ValidateEnrollment(*sport, reg, quota); len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}
		if err := tx.Create(&models.IndividualEntry{SportID: sportID, RegNumber: reg}).Error; err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}

// RemoveParticipation drops a player from the sport: a non-captain team
// member leaves their team, an individual participant leaves the entry set.
// The captain cannot leave while the team exists.
func (s *ParticipationService) RemoveParticipation(sportID uint32, reg string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		if team := sport.TeamOf(reg); team != nil {
			if team.CaptainReg == reg {
				return ErrCaptainImmutable
			}
			if err := tx.Where("team_id = ? AND reg_number = ?", team.ID, reg).Delete(&models.TeamMember{}).Error; err != nil {
				return err
			}
			InvalidateSportCaches(sportID)
			return nil
		}
		if sport.IsEnrolled(reg) {
			if err := tx.Where("sport_id = ? AND reg_number = ?", sportID, reg).Delete(&models.IndividualEntry{}).Error; err != nil {
				return err
			}
			InvalidateSportCaches(sportID)
			return nil
		}
		return ErrNotParticipating
	})
}

// CreateTeam validates every team-creation rule and commits the team with
// its member rows in one transaction. Either all invariants hold and the
// team is persisted in full, or nothing changes.
func (s *ParticipationService) CreateTeam(sportID uint32, actingReg, teamName string, members []string, now time.Time) (*models.Team, error) {
	var created *models.Team
	err := s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		open, err := s.registrationOpen(sport.EventID, now)
		if err != nil {
			return err
		}
		if !open {
			return &ValidationError{Violations: []string{"registration window is closed for this event"}}
		}

		roster, err := s.roster.ResolveAll(members)
		if err != nil {
			return err
		}
		quotas := make(map[string]QuotaSnapshot, len(members))
		for _, reg := range members {
			if _, ok := roster[reg]; !ok {
				continue
			}
			quota, err := quotaFor(tx, reg)
			if err != nil {
				return err
			}
			quotas[reg] = quota
		}

		violations := ValidateTeamCreation(TeamCreationRequest{
			Sport:     *sport,
			TeamName:  teamName,
			Members:   members,
			ActingReg: actingReg,
			Roster:    roster,
			Quotas:    quotas,
		})
		if len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}

		ref := roster[members[0]]
		team := models.Team{
			SportID:    sportID,
			TeamName:   strings.TrimSpace(teamName),
			NameKey:    strings.ToLower(strings.TrimSpace(teamName)),
			CaptainReg: actingReg,
			Gender:     ref.Gender,
			BatchYear:  ref.BatchYear,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		for _, reg := range members {
			member := models.TeamMember{TeamID: team.ID, RegNumber: reg, JoinedAt: now}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
			team.Members = append(team.Members, member)
		}
		created = &team
		InvalidateSportCaches(sportID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ReplaceMember swaps oldReg for newReg on a team. The captain is immutable.
func (s *ParticipationService) ReplaceMember(sportID, teamID uint32, oldReg, newReg string, now time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		var team *models.Team
		for i := range sport.Teams {
			if sport.Teams[i].ID == teamID {
				team = &sport.Teams[i]
				break
			}
		}
		if team == nil {
			return ErrTeamNotFound
		}

		var entry *RosterEntry
		if resolved, err := s.roster.Resolve(newReg); err == nil {
			entry = resolved
		} else if !errors.Is(err, ErrPlayerNotFound) {
			return err
		}
		quota, err := quotaFor(tx, newReg)
		if err != nil {
			return err
		}

		if violations := ValidateReplacement(*sport, *team, oldReg, newReg, entry, quota); len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}

		err = tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND reg_number = ?", teamID, oldReg).
			Updates(map[string]interface{}{"reg_number": newReg, "joined_at": now}).Error
		if err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}

// DeleteTeam removes the team and its member rows. The caller is expected
// to have verified no match still references the team.
func (s *ParticipationService) DeleteTeam(sportID, teamID uint32) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		sport, err := lockSport(tx, sportID)
		if err != nil {
			return err
		}
		found := false
		for i := range sport.Teams {
			if sport.Teams[i].ID == teamID {
				found = true
				break
			}
		}
		if !found {
			return ErrTeamNotFound
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Team{}, teamID).Error; err != nil {
			return err
		}
		InvalidateSportCaches(sportID)
		return nil
	})
}
