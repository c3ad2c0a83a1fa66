// file: services/standings_service.go
package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"

	"sportsfest/database"
	"sportsfest/models"
)

// StandingsService rebuilds the league points table of a sport from its
// resolved league matches. The table is recomputed wholesale, persisted in
// one transaction and cached in redis; the cache is cleared synchronously
// after every rebuild.
type StandingsService struct {
	db *gorm.DB
}

func NewStandingsService(db *gorm.DB) *StandingsService {
	return &StandingsService{db: db}
}

type tally struct {
	played int
	wins   int
	draws  int
	losses int
	points int
}

// Recompute rebuilds both gender partitions of the sport's standings.
// A win is worth 2 points, a draw 1 for each side.
func (s *StandingsService) Recompute(sportID uint32) error {
	var sport models.Sport
	if err := s.db.First(&sport, sportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSportNotFound
		}
		return err
	}

	var matches []models.Match
	err := s.db.Where("sport_id = ? AND type = ?", sportID, models.MatchLeague).
		Preload("Participant").
		Find(&matches).Error
	if err != nil {
		return err
	}

	tallies := map[models.Gender]map[string]*tally{
		models.GenderMale:   {},
		models.GenderFemale: {},
	}
	record := func(gender models.Gender, name string) *tally {
		t, ok := tallies[gender][name]
		if !ok {
			t = &tally{}
			tallies[gender][name] = t
		}
		return t
	}

	for _, m := range matches {
		switch m.Status {
		case models.MatchStatusCompleted:
			if m.Winner == nil {
				continue
			}
			for _, p := range m.Participant {
				t := record(m.Gender, p.Name)
				t.played++
				if p.Name == *m.Winner {
					t.wins++
					t.points += 2
				} else {
					t.losses++
				}
			}
		case models.MatchStatusDraw:
			for _, p := range m.Participant {
				t := record(m.Gender, p.Name)
				t.played++
				t.draws++
				t.points++
			}
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sport_id = ?", sportID).Delete(&models.Standing{}).Error; err != nil {
			return err
		}
		for gender, byName := range tallies {
			names := make([]string, 0, len(byName))
			for name := range byName {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				a, b := byName[names[i]], byName[names[j]]
				if a.points != b.points {
					return a.points > b.points
				}
				if a.wins != b.wins {
					return a.wins > b.wins
				}
				return names[i] < names[j]
			})
			for rank, name := range names {
				t := byName[name]
				row := models.Standing{
					SportID:   sportID,
					Gender:    gender,
					Name:      name,
					Played:    t.played,
					Wins:      t.wins,
					Draws:     t.draws,
					Losses:    t.losses,
					Points:    t.points,
					Rank:      uint(rank + 1),
					UpdatedAt: time.Now(),
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Cached standings are stale the moment the table is rebuilt.
	if database.RDB != nil {
		keys := []string{
			StandingsKey(sportID, string(models.GenderMale)),
			StandingsKey(sportID, string(models.GenderFemale)),
		}
		if err := database.RDB.Del(database.Ctx, keys...).Err(); err != nil {
			log.Printf("Failed to clear standings cache for sport %d: %v", sportID, err)
		}
	}
	return nil
}

// Get returns the persisted standings for one gender partition.
func (s *StandingsService) Get(sportID uint32, gender models.Gender) ([]models.Standing, error) {
	var rows []models.Standing
	err := s.db.Where("sport_id = ? AND gender = ?", sportID, gender).
		Order("`rank` asc").
		Find(&rows).Error
	return rows, err
}
