// file: services/cache.go
package services

import (
	"fmt"
	"log"

	"sportsfest/database"
)

// Cache keys in front of sport and match reads. Every successful mutation
// drops the affected keys synchronously so eligibility and quota reads never
// observe stale participant sets.

func SportDetailKey(sportID uint32) string {
	return fmt.Sprintf("sport:detail:%d", sportID)
}

func MatchListKey(sportID uint32) string {
	return fmt.Sprintf("matches:sport:%d", sportID)
}

func StandingsKey(sportID uint32, gender string) string {
	return fmt.Sprintf("standings:sport:%d:%s", sportID, gender)
}

// InvalidateSportCaches removes every cached read for one sport.
func InvalidateSportCaches(sportID uint32) {
	if database.RDB == nil {
		return
	}
	keys := []string{
		SportDetailKey(sportID),
		StandingsKey(sportID, "male"),
		StandingsKey(sportID, "female"),
		MatchListKey(sportID),
	}
	if err := database.RDB.Del(database.Ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate cache for sport %d: %v", sportID, err)
	}
}
