package leagues

import "errors"

var (
	ErrCompetitionNotFound     = errors.New("competition not found")
	ErrCompetitionArchived     = errors.New("competition is archived")
	ErrMatchNotFound           = errors.New("match not found")
	ErrMatchArchived           = errors.New("match is archived")
	ErrMatchCompleted          = errors.New("match already has a result")
	ErrMatchNotScheduled       = errors.New("match is not scheduled")
	ErrTeamNotFound            = errors.New("team not found")
	ErrNotMiniLeague           = errors.New("competition is not a mini-league")
	ErrPhaseConflict           = errors.New("competition is not in the required phase")
	ErrQualificationIncomplete = errors.New("qualification matches are still incomplete")
	ErrInvalidEvent            = errors.New("invalid match event")
)

const (
	MatchScheduled  = "scheduled"
	MatchInProgress = "in_progress"
	MatchCompleted  = "completed"

	EventGoal       = "goal"
	EventYellowCard = "yellow_card"
	EventRedCard    = "red_card"
)
