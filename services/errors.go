// file: services/errors.go
package services

import (
	"errors"
	"strings"
)

// Not-found errors.
var (
	ErrPlayerNotFound = errors.New("player not found in roster")
	ErrEventNotFound  = errors.New("event not found")
	ErrSportNotFound  = errors.New("sport not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrMatchNotFound  = errors.New("match not found")
)

// State and role errors.
var (
	ErrNotTeamSport        = errors.New("operation only valid for team sports")
	ErrAlreadyCaptain      = errors.New("player is already an eligible captain for this sport")
	ErrCaptainHasTeam      = errors.New("player has already created a team for this sport")
	ErrNotCaptain          = errors.New("player is not an eligible captain for this sport")
	ErrCoordinatorConflict = errors.New("player already participates in this sport and cannot coordinate it")
	ErrAlreadyCoordinator  = errors.New("player is already a coordinator for this sport")
	ErrNotCoordinator      = errors.New("player is not a coordinator for this sport")
	ErrNotParticipating    = errors.New("player does not participate in this sport")
	ErrCaptainImmutable    = errors.New("team captain cannot be removed or replaced; delete the team instead")
	ErrSportReferenced     = errors.New("sport is still referenced by teams, entries, matches or standings")
	ErrMatchNotScheduled   = errors.New("match is no longer in scheduled status")
	ErrMatchDateNotReached = errors.New("match date has not been reached yet")
	ErrWinnerRequiresDone  = errors.New("winner can only be declared on a completed match")
	ErrWinnerNotInMatch    = errors.New("winner is not one of the match participants")
	ErrQualifierNotInMatch = errors.New("qualifier is not one of the match participants")
	ErrQualifiersDualMatch = errors.New("qualifiers are only used for multi-participant matches")
	ErrWinnerMultiMatch    = errors.New("multi-participant matches declare qualifiers, not a single winner")
)

// ValidationError carries every rule violated by a request, not just the
// first. Nothing is committed when it is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// AsValidation unwraps a *ValidationError if err is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
