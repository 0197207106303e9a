// Package leagues persists competitions, fixtures, results and standings.
// Every multi-row write runs inside a single transaction.
package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/fixtures"
)

type ScheduleInput struct {
	Name          string
	Mode          string
	TeamIDs       []int64
	StartDate     time.Time
	MatchesPerDay int
	Policy        fixtures.TimePolicy
	IsTest        bool
	// IdempotencyKey makes a retried request return the competition the
	// first attempt created.
	IdempotencyKey   string
	MinRosterSize    int
	RoundCadenceDays int
	Location         *time.Location
	Rand             *rand.Rand
}

type Schedule struct {
	Competition dbgen.Competition
	Matches     []dbgen.Match
	TeamNames   map[int64]string
	Replayed    bool
}

// CreateSchedule validates the teams, generates fixtures for the requested
// mode and stores the competition, its matches, zeroed standings rows and
// the fixture notifications in one transaction.
func CreateSchedule(ctx context.Context, database *appdb.DB, input ScheduleInput) (Schedule, error) {
	if database == nil {
		return Schedule{}, fmt.Errorf("database is required")
	}
	if input.IdempotencyKey != "" {
		existing, found, err := scheduleByKey(ctx, database.Queries, input.IdempotencyKey)
		if err != nil || found {
			return existing, err
		}
	}

	var schedule Schedule
	err := database.RunInTx(ctx, func(txdb *appdb.DB) error {
		q := txdb.Queries
		teams, names, err := loadFixtureTeams(ctx, q, input.TeamIDs)
		if err != nil {
			return err
		}

		generated, phase, err := generateFixtures(input, teams)
		if err != nil {
			return err
		}

		// Stored as a calendar date, independent of the league timezone.
		y, m, d := input.StartDate.Date()
		startDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		competition, err := q.CreateCompetition(ctx, dbgen.CreateCompetitionParams{
			Name:           competitionName(input, startDate),
			Mode:           input.Mode,
			Phase:          phase,
			StartDate:      startDate,
			IsTest:         input.IsTest,
			IdempotencyKey: apiutil.ToNullString(input.IdempotencyKey),
		})
		if err != nil {
			return fmt.Errorf("create competition: %w", err)
		}

		matches, err := insertMatches(ctx, q, competition, generated)
		if err != nil {
			return err
		}

		for _, f := range seedGroups(generated) {
			if err := q.UpsertStanding(ctx, dbgen.UpsertStandingParams{
				CompetitionID: competition.ID,
				TeamID:        f.teamID,
				GroupLabel:    f.group,
			}); err != nil {
				return fmt.Errorf("seed standing for team %d: %w", f.teamID, err)
			}
		}

		queued, err := enqueueFixtureNotices(ctx, q, competition, matches, names, input.Location)
		if err != nil {
			return err
		}

		log.Ctx(ctx).Info().
			Int64("competition_id", competition.ID).
			Str("mode", competition.Mode).
			Int("matches", len(matches)).
			Int("notifications", queued).
			Msg("Fixtures generated")

		schedule = Schedule{Competition: competition, Matches: matches, TeamNames: names}
		return nil
	})
	if err != nil {
		if input.IdempotencyKey != "" && apiutil.IsSQLiteUniqueViolation(err) {
			// A concurrent request with the same key won the insert.
			existing, found, lookupErr := scheduleByKey(ctx, database.Queries, input.IdempotencyKey)
			if lookupErr == nil && found {
				return existing, nil
			}
		}
		return Schedule{}, err
	}
	return schedule, nil
}

func generateFixtures(input ScheduleInput, teams []fixtures.Team) ([]fixtures.Fixture, string, error) {
	var (
		generated []fixtures.Fixture
		phase     string
		err       error
	)
	switch input.Mode {
	case fixtures.ModeClassic:
		phase = fixtures.PhaseInProgress
		generated, err = fixtures.GenerateClassic(fixtures.ClassicParams{
			Teams:            teams,
			StartDate:        input.StartDate,
			MatchesPerDay:    input.MatchesPerDay,
			Policy:           input.Policy,
			RoundCadenceDays: input.RoundCadenceDays,
			MinRosterSize:    input.MinRosterSize,
			Rand:             input.Rand,
		})
	case fixtures.ModeMiniLeague:
		phase = fixtures.PhaseQualificationPending
		generated, err = fixtures.GenerateMiniLeagueQualifiers(fixtures.MiniLeagueParams{
			Teams:            teams,
			StartDate:        input.StartDate,
			Policy:           input.Policy,
			RoundCadenceDays: input.RoundCadenceDays,
			MinRosterSize:    input.MinRosterSize,
		})
	default:
		return nil, "", &fixtures.ValidationError{Message: fmt.Sprintf("unknown mode %q", input.Mode)}
	}
	if err != nil {
		return nil, "", err
	}
	if len(generated) == 0 {
		return nil, "", &fixtures.ValidationError{Message: "no fixtures generated"}
	}
	return generated, phase, nil
}

func insertMatches(ctx context.Context, q *dbgen.Queries, competition dbgen.Competition, generated []fixtures.Fixture) ([]dbgen.Match, error) {
	matches := make([]dbgen.Match, 0, len(generated))
	for _, f := range generated {
		match, err := q.CreateMatch(ctx, dbgen.CreateMatchParams{
			CompetitionID: competition.ID,
			HomeTeamID:    f.HomeTeamID,
			AwayTeamID:    f.AwayTeamID,
			Round:         int64(f.Round),
			Stage:         f.Stage,
			GroupLabel:    f.Group,
			ScheduledAt:   f.KickoffAt.UTC(),
			Mode:          competition.Mode,
			IsTest:        competition.IsTest,
		})
		if err != nil {
			return nil, fmt.Errorf("create match %d vs %d: %w", f.HomeTeamID, f.AwayTeamID, err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}

type teamGroup struct {
	teamID int64
	group  string
}

// seedGroups lists each team once, in first-appearance order, with its group.
func seedGroups(generated []fixtures.Fixture) []teamGroup {
	seen := make(map[int64]struct{})
	var out []teamGroup
	for _, f := range generated {
		for _, id := range []int64{f.HomeTeamID, f.AwayTeamID} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, teamGroup{teamID: id, group: f.Group})
		}
	}
	return out
}

func competitionName(input ScheduleInput, startDate time.Time) string {
	if name := strings.TrimSpace(input.Name); name != "" {
		return name
	}
	label := "League"
	if input.Mode == fixtures.ModeMiniLeague {
		label = "Mini-League"
	}
	return fmt.Sprintf("%s %s", label, startDate.Format("2006-01-02"))
}

func scheduleByKey(ctx context.Context, q *dbgen.Queries, key string) (Schedule, bool, error) {
	competition, err := q.GetCompetitionByIdempotencyKey(ctx, apiutil.ToNullString(key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Schedule{}, false, nil
		}
		return Schedule{}, false, fmt.Errorf("lookup idempotency key: %w", err)
	}
	matches, err := q.ListMatchesByCompetition(ctx, competition.ID)
	if err != nil {
		return Schedule{}, false, fmt.Errorf("list matches for competition %d: %w", competition.ID, err)
	}
	ids := make([]int64, 0, len(matches)*2)
	for _, m := range matches {
		ids = append(ids, m.HomeTeamID, m.AwayTeamID)
	}
	names, err := teamNames(ctx, q, ids...)
	if err != nil {
		return Schedule{}, false, err
	}
	return Schedule{Competition: competition, Matches: matches, TeamNames: names, Replayed: true}, true, nil
}
