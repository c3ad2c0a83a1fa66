// file: models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Gender string
type UserRole string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"

	RolePlayer UserRole = "player"
	RoleAdmin  UserRole = "admin"
)

// User doubles as the roster directory record: registration number,
// gender and batch year are what the eligibility rules resolve against.
type User struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	RegNumber string    `gorm:"size:20;unique;not null" json:"reg_number"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Gender    Gender    `gorm:"type:enum('male','female');not null" json:"gender"`
	BatchYear int       `gorm:"not null" json:"batch_year"`
	Role      UserRole  `gorm:"type:enum('player','admin');not null;default:'player'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "sportsfest_user"
}

// BeforeSave hashes the password on create and whenever it changes.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
