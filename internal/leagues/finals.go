package leagues

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/standings"
)

type FinalsInput struct {
	CompetitionID int64
	// Date of the finals day. Zero schedules them one cadence after the
	// last qualification day.
	Date             time.Time
	Policy           fixtures.TimePolicy
	RoundCadenceDays int
	Location         *time.Location
}

type Finals struct {
	Schedule
	Groups map[string][]standings.Row
}

// GenerateFinals schedules the mini-league placement matches. It is only
// accepted once every qualification match is complete and the competition
// has reached the qualification_complete phase.
func GenerateFinals(ctx context.Context, database *appdb.DB, input FinalsInput) (Finals, error) {
	loc := input.Location
	if loc == nil {
		loc = time.UTC
	}

	var out Finals
	err := database.RunInTx(ctx, func(txdb *appdb.DB) error {
		q := txdb.Queries
		competition, err := getCompetition(ctx, q, input.CompetitionID)
		if err != nil {
			return err
		}
		if competition.Archived {
			return ErrCompetitionArchived
		}
		if competition.Mode != fixtures.ModeMiniLeague {
			return ErrNotMiniLeague
		}
		switch competition.Phase {
		case fixtures.PhaseFinalsScheduled, fixtures.PhaseCompleted:
			return fmt.Errorf("%w: finals already scheduled", ErrPhaseConflict)
		}

		open, err := q.CountIncompleteMatchesByStage(ctx, dbgen.CountIncompleteMatchesByStageParams{
			CompetitionID: competition.ID,
			Stage:         fixtures.StageQualification,
		})
		if err != nil {
			return fmt.Errorf("count open qualification matches: %w", err)
		}
		if open > 0 {
			return fmt.Errorf("%w: %d remaining", ErrQualificationIncomplete, open)
		}
		if competition.Phase != fixtures.PhaseQualificationDone {
			return fmt.Errorf("%w: phase is %s", ErrPhaseConflict, competition.Phase)
		}

		groups, err := GroupTables(ctx, q, competition.ID)
		if err != nil {
			return err
		}

		date := input.Date
		if date.IsZero() {
			date, err = defaultFinalsDate(ctx, q, competition.ID, input.RoundCadenceDays, loc)
			if err != nil {
				return err
			}
		}

		generated, err := fixtures.GenerateMiniLeagueFinals(fixtures.FinalsParams{
			GroupA: rankedIDs(groups[fixtures.GroupA]),
			GroupB: rankedIDs(groups[fixtures.GroupB]),
			Date:   date,
			Policy: input.Policy,
		})
		if err != nil {
			return err
		}

		matches, err := insertMatches(ctx, q, competition, generated)
		if err != nil {
			return err
		}
		competition, err = q.UpdateCompetitionPhase(ctx, dbgen.UpdateCompetitionPhaseParams{
			Phase: fixtures.PhaseFinalsScheduled,
			ID:    competition.ID,
		})
		if err != nil {
			return fmt.Errorf("mark finals scheduled: %w", err)
		}

		names := make(map[int64]string)
		for _, rows := range groups {
			for _, row := range rows {
				names[row.TeamID] = row.TeamName
			}
		}
		queued, err := enqueueFixtureNotices(ctx, q, competition, matches, names, loc)
		if err != nil {
			return err
		}

		log.Ctx(ctx).Info().
			Int64("competition_id", competition.ID).
			Int("matches", len(matches)).
			Int("notifications", queued).
			Msg("Finals scheduled")

		out = Finals{
			Schedule: Schedule{Competition: competition, Matches: matches, TeamNames: names},
			Groups:   groups,
		}
		return nil
	})
	return out, err
}

func rankedIDs(rows []standings.Row) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.TeamID)
	}
	return ids
}

func defaultFinalsDate(ctx context.Context, q *dbgen.Queries, competitionID int64, cadence int, loc *time.Location) (time.Time, error) {
	matches, err := q.ListMatchesByCompetition(ctx, competitionID)
	if err != nil {
		return time.Time{}, fmt.Errorf("list matches for competition %d: %w", competitionID, err)
	}
	var last time.Time
	for _, m := range matches {
		if m.Stage == fixtures.StageQualification && m.ScheduledAt.After(last) {
			last = m.ScheduledAt
		}
	}
	if last.IsZero() {
		return time.Time{}, fmt.Errorf("competition %d has no qualification matches", competitionID)
	}
	if cadence <= 0 {
		cadence = fixtures.DefaultRoundCadenceDays
	}
	local := last.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return day.AddDate(0, 0, cadence), nil
}
