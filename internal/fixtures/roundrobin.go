// Package fixtures builds league and mini-league match schedules. It performs
// no I/O; persisting the generated fixtures is the caller's job.
package fixtures

import (
	"math/rand/v2"
	"time"
)

const (
	ModeClassic    = "CLASSIC"
	ModeMiniLeague = "MINI_LEAGUE"

	StageLeague        = "league"
	StageQualification = "qualification"
	StageFinals        = "finals"

	DefaultMinRosterSize    = 7
	DefaultRoundCadenceDays = 7
)

// Team is the generator's view of a registered team.
type Team struct {
	ID         int64
	Name       string
	Active     bool
	RosterSize int
}

type Fixture struct {
	HomeTeamID int64
	AwayTeamID int64
	Round      int
	Slot       int
	Stage      string
	Group      string
	KickoffAt  time.Time
}

type ClassicParams struct {
	Teams            []Team
	StartDate        time.Time
	MatchesPerDay    int
	Policy           TimePolicy
	RoundCadenceDays int
	MinRosterSize    int
	// Rand shuffles the fixture order. Nil uses the global source.
	Rand *rand.Rand
}

// GenerateClassic builds a shuffled double round-robin where every ordered
// (home, away) pair appears exactly once, grouped into rounds of
// MatchesPerDay fixtures on a fixed cadence from StartDate.
func GenerateClassic(params ClassicParams) ([]Fixture, error) {
	if len(params.Teams) < 2 {
		return nil, validationErrorf("at least two teams are required")
	}
	if params.MatchesPerDay < 1 {
		return nil, validationErrorf("matchesPerDay must be at least 1")
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

	firstLeg := buildRoundRobinPairs(params.Teams)
	pairs := make([]pairing, 0, len(firstLeg)*2)
	pairs = append(pairs, firstLeg...)
	for _, p := range firstLeg {
		pairs = append(pairs, pairing{home: p.away, away: p.home})
	}

	shuffle := rand.Shuffle
	if params.Rand != nil {
		shuffle = params.Rand.Shuffle
	}
	shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	startDate := truncateDate(params.StartDate)
	cadence := cadenceDays(params.RoundCadenceDays)
	fixtures := make([]Fixture, 0, len(pairs))
	for idx, p := range pairs {
		round := idx/params.MatchesPerDay + 1
		slot := idx % params.MatchesPerDay
		date := startDate.AddDate(0, 0, (round-1)*cadence)
		fixtures = append(fixtures, Fixture{
			HomeTeamID: p.home.ID,
			AwayTeamID: p.away.ID,
			Round:      round,
			Slot:       slot,
			Stage:      StageLeague,
			KickoffAt:  params.Policy.Kickoff(date, slot),
		})
	}
	return fixtures, nil
}

type pairing struct {
	round int
	home  Team
	away  Team
}

// buildRoundRobinPairs returns a single round-robin using the circle method.
// Odd team counts get a bye slot, so each round has floor(n/2) pairings.
func buildRoundRobinPairs(teams []Team) []pairing {
	working := make([]*Team, 0, len(teams)+1)
	for i := range teams {
		working = append(working, &teams[i])
	}
	if len(working)%2 == 1 {
		working = append(working, nil)
	}

	rounds := len(working) - 1
	pairs := make([]pairing, 0, rounds*len(working)/2)

	for round := 0; round < rounds; round++ {
		for i := 0; i < len(working)/2; i++ {
			left := working[i]
			right := working[len(working)-1-i]
			if left == nil || right == nil {
				continue
			}
			home := *left
			away := *right
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			pairs = append(pairs, pairing{round: round + 1, home: home, away: away})
		}
		rotateTeams(working)
	}

	return pairs
}

func rotateTeams(teams []*Team) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}

// validateTeams fails on the first team that cannot be scheduled.
func validateTeams(teams []Team, minRosterSize int) error {
	seen := make(map[int64]struct{}, len(teams))
	for _, team := range teams {
		if team.ID <= 0 {
			return validationErrorf("team IDs must be positive")
		}
		if _, ok := seen[team.ID]; ok {
			return validationErrorf("team %d is listed more than once", team.ID)
		}
		seen[team.ID] = struct{}{}
		if !team.Active {
			return validationErrorf("team %q is not active", team.Name)
		}
		if team.RosterSize < minRosterSize {
			return validationErrorf("team %q has %d active players; at least %d are required", team.Name, team.RosterSize, minRosterSize)
		}
	}
	return nil
}

func minRoster(value int) int {
	if value <= 0 {
		return DefaultMinRosterSize
	}
	return value
}

func cadenceDays(value int) int {
	if value <= 0 {
		return DefaultRoundCadenceDays
	}
	return value
}
