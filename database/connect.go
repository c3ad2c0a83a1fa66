// file: database/connect.go
package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"sportsfest/models"
)

var DB *gorm.DB

func Connect() {
	var err error
	dsn := os.Getenv("SPORTSFEST_DSN")
	if dsn == "" {
		dsn = "root:123456@tcp(localhost:3306)/sportsfest?charset=utf8mb4&parseTime=True&loc=Local"
	}
	// TranslateError turns driver errors like MySQL 1062 into gorm's
	// dialect-neutral sentinels, which the handlers map onto the conflict
	// response code.
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// MySQL closes idle connections after wait_timeout; recycle ours first.
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection successfully established and connection pool configured.")
}

func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Sport{},
		&models.SportCaptain{},
		&models.SportCoordinator{},
		&models.IndividualEntry{},
		&models.Team{},
		&models.TeamMember{},
		&models.Match{},
		&models.MatchParticipant{},
		&models.Standing{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	log.Println("Database migration completed.")
}
