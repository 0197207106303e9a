package fixtures

import "time"

const (
	MiniLeagueTeamCount = 10
	miniLeagueGroupSize = MiniLeagueTeamCount / 2
	// FinalsRound follows the five qualification days.
	FinalsRound = miniLeagueGroupSize + 1

	GroupA = "A"
	GroupB = "B"
)

// Competition phases. CLASSIC competitions only use PhaseInProgress and PhaseCompleted.
const (
	PhaseInProgress           = "in_progress"
	PhaseQualificationPending = "qualification_pending"
	PhaseQualificationDone    = "qualification_complete"
	PhaseFinalsScheduled      = "finals_scheduled"
	PhaseCompleted            = "completed"
)

type MiniLeagueParams struct {
	// Teams in request order: the first five form group A, the rest group B.
	Teams            []Team
	StartDate        time.Time
	Policy           TimePolicy
	RoundCadenceDays int
	MinRosterSize    int
}

// GenerateMiniLeagueQualifiers schedules the qualification stage only: a
// single round-robin inside each group, one day per round, group A in the
// first two slots and group B in the next two. Finals are generated
// separately once every qualification result exists.
func GenerateMiniLeagueQualifiers(params MiniLeagueParams) ([]Fixture, error) {
	if len(params.Teams) != MiniLeagueTeamCount {
		return nil, validationErrorf("mini-league requires exactly %d teams, got %d", MiniLeagueTeamCount, len(params.Teams))
	}
	if params.Policy == nil {
		return nil, validationErrorf("a time policy is required")
	}
	if err := params.Policy.Validate(); err != nil {
		return nil, err
	}
	if params.StartDate.IsZero() {
		return nil, validationErrorf("startDate is required")
	}
	if err := validateTeams(params.Teams, minRoster(params.MinRosterSize)); err != nil {
		return nil, err
	}

	groups := []struct {
		label string
		pairs []pairing
	}{
		{GroupA, buildRoundRobinPairs(params.Teams[:miniLeagueGroupSize])},
		{GroupB, buildRoundRobinPairs(params.Teams[miniLeagueGroupSize:])},
	}

	startDate := truncateDate(params.StartDate)
	cadence := cadenceDays(params.RoundCadenceDays)
	fixtures := make([]Fixture, 0, 20)
	for round := 1; round <= miniLeagueGroupSize; round++ {
		date := startDate.AddDate(0, 0, (round-1)*cadence)
		slot := 0
		for _, group := range groups {
			for _, p := range group.pairs {
				if p.round != round {
					continue
				}
				fixtures = append(fixtures, Fixture{
					HomeTeamID: p.home.ID,
					AwayTeamID: p.away.ID,
					Round:      round,
					Slot:       slot,
					Stage:      StageQualification,
					Group:      group.label,
					KickoffAt:  params.Policy.Kickoff(date, slot),
				})
				slot++
			}
		}
	}
	return fixtures, nil
}

type FinalsParams struct {
	// Ranked team IDs, best first.
	GroupA []int64
	GroupB []int64
	Date   time.Time
	Policy TimePolicy
}

// GenerateMiniLeagueFinals pairs equal placements across the groups
// (A1-B1, A2-B2, ...). All placement matches share one day and the final
// between the group winners takes the last slot.
func GenerateMiniLeagueFinals(params FinalsParams) ([]Fixture, error) {
	if len(params.GroupA) != miniLeagueGroupSize || len(params.GroupB) != miniLeagueGroupSize {
		return nil, validationErrorf("each group must rank exactly %d teams", miniLeagueGroupSize)
	}
	if params.Policy == nil {
		return nil, validationErrorf("a time policy is required")
	}
	if err := params.Policy.Validate(); err != nil {
		return nil, err
	}
	if params.Date.IsZero() {
		return nil, validationErrorf("finals date is required")
	}

	date := truncateDate(params.Date)
	fixtures := make([]Fixture, 0, miniLeagueGroupSize)
	for slot := 0; slot < miniLeagueGroupSize; slot++ {
		place := miniLeagueGroupSize - 1 - slot
		fixtures = append(fixtures, Fixture{
			HomeTeamID: params.GroupA[place],
			AwayTeamID: params.GroupB[place],
			Round:      FinalsRound,
			Slot:       slot,
			Stage:      StageFinals,
			KickoffAt:  params.Policy.Kickoff(date, slot),
		})
	}
	return fixtures, nil
}
