// file: services/roster.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"sportsfest/models"
)

// RosterEntry is the identity slice of a player the eligibility rules care
// about.
type RosterEntry struct {
	RegNumber string
	Name      string
	Gender    models.Gender
	BatchYear int
}

// RosterDirectory resolves registration numbers to roster entries. Injected
// into the engines instead of being looked up through globals.
type RosterDirectory interface {
	Resolve(reg string) (*RosterEntry, error)
	ResolveAll(regs []string) (map[string]RosterEntry, error)
}

type gormRoster struct {
	db *gorm.DB
}

func NewRosterDirectory(db *gorm.DB) RosterDirectory {
	return &gormRoster{db: db}
}

func (r *gormRoster) Resolve(reg string) (*RosterEntry, error) {
	var user models.User
	if err := r.db.Where("reg_number = ?", reg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &RosterEntry{
		RegNumber: user.RegNumber,
		Name:      user.Name,
		Gender:    user.Gender,
		BatchYear: user.BatchYear,
	}, nil
}

// ResolveAll returns entries for every registration number that exists.
// Missing numbers are simply absent from the map; callers decide whether
// that is a violation.
func (r *gormRoster) ResolveAll(regs []string) (map[string]RosterEntry, error) {
	var users []models.User
	if err := r.db.Where("reg_number IN ?", regs).Find(&users).Error; err != nil {
		return nil, err
	}
	entries := make(map[string]RosterEntry, len(users))
	for _, u := range users {
		entries[u.RegNumber] = RosterEntry{
			RegNumber: u.RegNumber,
			Name:      u.Name,
			Gender:    u.Gender,
			BatchYear: u.BatchYear,
		}
	}
	return entries, nil
}
