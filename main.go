// file: main.go
package main

import (
	"log"
	"os"

	"sportsfest/controllers"
	"sportsfest/database"
	"sportsfest/routes"
	"sportsfest/services"
)

func main() {
	database.Connect()
	database.InitRedis()

	// Schema is managed by migrations in deployment; enable for local dev.
	// database.MigrateTables()

	roster := services.NewRosterDirectory(database.DB)
	calendar := services.NewEventCalendar(database.DB)
	participation := services.NewParticipationService(database.DB, roster, calendar)
	matches := services.NewMatchService(database.DB, roster, calendar)
	standings := services.NewStandingsService(database.DB)

	r := routes.SetupRouter(routes.Controllers{
		Participation: controllers.NewParticipationController(participation),
		Match:         controllers.NewMatchController(matches, participation, standings),
		Standings:     controllers.NewStandingsController(standings),
	})

	addr := os.Getenv("SPORTSFEST_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
