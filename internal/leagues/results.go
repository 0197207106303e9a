package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/standings"
)

type EventInput struct {
	PlayerID int64
	Kind     string
	Minute   *int
}

type ResultInput struct {
	MatchID        int64
	HomeScore      int
	AwayScore      int
	HomePenalties  *int
	AwayPenalties  *int
	Events         []EventInput
	IdempotencyKey string
	Location       *time.Location
}

type ResultOutcome struct {
	Match    dbgen.Match
	Result   dbgen.MatchResult
	Events   []dbgen.ResultEvent
	Home     standings.Row
	Away     standings.Row
	Phase    string
	Replayed bool
}

// RecordResult stores a final score for a match, applies it to both teams'
// standings, marks the match completed and advances the competition phase
// when the match closes a stage. A repeated submission carrying the
// idempotency key of the stored result returns that result unchanged.
func RecordResult(ctx context.Context, database *appdb.DB, input ResultInput) (ResultOutcome, error) {
	if database == nil {
		return ResultOutcome{}, fmt.Errorf("database is required")
	}
	logger := log.Ctx(ctx)

	var outcome ResultOutcome
	err := database.RunInTx(ctx, func(txdb *appdb.DB) error {
		q := txdb.Queries
		match, err := getMatch(ctx, q, input.MatchID)
		if err != nil {
			return err
		}
		if match.Archived {
			return ErrMatchArchived
		}
		if match.Status == MatchCompleted {
			existing, err := q.GetMatchResultByMatch(ctx, match.ID)
			if err != nil {
				return fmt.Errorf("load stored result for match %d: %w", match.ID, err)
			}
			if input.IdempotencyKey == "" || !existing.IdempotencyKey.Valid || existing.IdempotencyKey.String != input.IdempotencyKey {
				return ErrMatchCompleted
			}
			outcome, err = storedOutcome(ctx, q, match, existing)
			return err
		}

		res := standings.Result{
			HomeTeamID:    match.HomeTeamID,
			AwayTeamID:    match.AwayTeamID,
			HomeScore:     input.HomeScore,
			AwayScore:     input.AwayScore,
			HomePenalties: input.HomePenalties,
			AwayPenalties: input.AwayPenalties,
		}
		if err := res.Validate(); err != nil {
			return err
		}
		events, err := resolveEvents(ctx, q, match, input)
		if err != nil {
			return err
		}

		result, err := q.CreateMatchResult(ctx, dbgen.CreateMatchResultParams{
			MatchID:        match.ID,
			HomeScore:      int64(input.HomeScore),
			AwayScore:      int64(input.AwayScore),
			HomePenalties:  apiutil.ToNullInt64(input.HomePenalties),
			AwayPenalties:  apiutil.ToNullInt64(input.AwayPenalties),
			IdempotencyKey: apiutil.ToNullString(input.IdempotencyKey),
		})
		if err != nil {
			if apiutil.IsSQLiteUniqueViolation(err) {
				return ErrMatchCompleted
			}
			return fmt.Errorf("create result for match %d: %w", match.ID, err)
		}

		stored := make([]dbgen.ResultEvent, 0, len(events))
		for _, event := range events {
			event.ResultID = result.ID
			created, err := q.CreateResultEvent(ctx, event)
			if err != nil {
				return fmt.Errorf("create %s event for player %d: %w", event.Kind, event.PlayerID, err)
			}
			stored = append(stored, created)
		}

		names, err := teamNames(ctx, q, match.HomeTeamID, match.AwayTeamID)
		if err != nil {
			return err
		}
		home, err := loadRow(ctx, q, match.CompetitionID, match.HomeTeamID, match.GroupLabel, names[match.HomeTeamID])
		if err != nil {
			return err
		}
		away, err := loadRow(ctx, q, match.CompetitionID, match.AwayTeamID, match.GroupLabel, names[match.AwayTeamID])
		if err != nil {
			return err
		}
		home, away, err = standings.Apply(home, away, res)
		if err != nil {
			return err
		}
		for _, row := range []standings.Row{home, away} {
			if err := q.UpsertStanding(ctx, upsertParams(match.CompetitionID, row)); err != nil {
				return fmt.Errorf("update standing for team %d: %w", row.TeamID, err)
			}
		}

		match, err = q.UpdateMatchStatus(ctx, dbgen.UpdateMatchStatusParams{Status: MatchCompleted, ID: match.ID})
		if err != nil {
			return fmt.Errorf("complete match %d: %w", match.ID, err)
		}

		competition, err := getCompetition(ctx, q, match.CompetitionID)
		if err != nil {
			return err
		}
		phase, err := advancePhase(ctx, q, competition, match.Stage)
		if err != nil {
			return err
		}
		competition.Phase = phase

		if _, err := enqueueResultNotices(ctx, q, competition, match, result, names, input.Location); err != nil {
			return err
		}

		outcome = ResultOutcome{
			Match:  match,
			Result: result,
			Events: stored,
			Home:   home,
			Away:   away,
			Phase:  phase,
		}
		return nil
	})
	if err != nil {
		return ResultOutcome{}, err
	}

	if !outcome.Replayed {
		logger.Info().
			Int64("match_id", outcome.Match.ID).
			Int64("competition_id", outcome.Match.CompetitionID).
			Int64("home_score", outcome.Result.HomeScore).
			Int64("away_score", outcome.Result.AwayScore).
			Str("phase", outcome.Phase).
			Msg("Result recorded")
	}
	return outcome, nil
}

// resolveEvents checks every event against the two rosters and the final
// score and returns insert params without a result ID.
func resolveEvents(ctx context.Context, q *dbgen.Queries, match dbgen.Match, input ResultInput) ([]dbgen.CreateResultEventParams, error) {
	goals := map[int64]int{}
	events := make([]dbgen.CreateResultEventParams, 0, len(input.Events))
	for idx, event := range input.Events {
		switch event.Kind {
		case EventGoal, EventYellowCard, EventRedCard:
		default:
			return nil, fmt.Errorf("%w: event %d has unknown kind %q", ErrInvalidEvent, idx, event.Kind)
		}
		if event.Minute != nil && (*event.Minute < 0 || *event.Minute > 150) {
			return nil, fmt.Errorf("%w: event %d minute must be between 0 and 150", ErrInvalidEvent, idx)
		}
		player, err := q.GetPlayer(ctx, event.PlayerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("%w: player %d not found", ErrInvalidEvent, event.PlayerID)
			}
			return nil, fmt.Errorf("load player %d: %w", event.PlayerID, err)
		}
		if player.TeamID != match.HomeTeamID && player.TeamID != match.AwayTeamID {
			return nil, fmt.Errorf("%w: player %d does not play for either team", ErrInvalidEvent, player.ID)
		}
		if event.Kind == EventGoal {
			goals[player.TeamID]++
		}
		events = append(events, dbgen.CreateResultEventParams{
			PlayerID: player.ID,
			TeamID:   player.TeamID,
			Kind:     event.Kind,
			Minute:   apiutil.ToNullInt64(event.Minute),
		})
	}
	if goals[match.HomeTeamID] > input.HomeScore {
		return nil, fmt.Errorf("%w: %d home goal events exceed home score %d", ErrInvalidEvent, goals[match.HomeTeamID], input.HomeScore)
	}
	if goals[match.AwayTeamID] > input.AwayScore {
		return nil, fmt.Errorf("%w: %d away goal events exceed away score %d", ErrInvalidEvent, goals[match.AwayTeamID], input.AwayScore)
	}
	return events, nil
}

func storedOutcome(ctx context.Context, q *dbgen.Queries, match dbgen.Match, result dbgen.MatchResult) (ResultOutcome, error) {
	events, err := q.ListResultEvents(ctx, result.ID)
	if err != nil {
		return ResultOutcome{}, fmt.Errorf("list events for result %d: %w", result.ID, err)
	}
	names, err := teamNames(ctx, q, match.HomeTeamID, match.AwayTeamID)
	if err != nil {
		return ResultOutcome{}, err
	}
	home, err := loadRow(ctx, q, match.CompetitionID, match.HomeTeamID, match.GroupLabel, names[match.HomeTeamID])
	if err != nil {
		return ResultOutcome{}, err
	}
	away, err := loadRow(ctx, q, match.CompetitionID, match.AwayTeamID, match.GroupLabel, names[match.AwayTeamID])
	if err != nil {
		return ResultOutcome{}, err
	}
	competition, err := getCompetition(ctx, q, match.CompetitionID)
	if err != nil {
		return ResultOutcome{}, err
	}
	return ResultOutcome{
		Match:    match,
		Result:   result,
		Events:   events,
		Home:     home,
		Away:     away,
		Phase:    competition.Phase,
		Replayed: true,
	}, nil
}

// advancePhase moves the competition forward when the completed match was
// the last open match of its stage. Finals are never scheduled here.
func advancePhase(ctx context.Context, q *dbgen.Queries, competition dbgen.Competition, stage string) (string, error) {
	var next string
	switch {
	case stage == fixtures.StageLeague && competition.Phase == fixtures.PhaseInProgress:
		next = fixtures.PhaseCompleted
	case stage == fixtures.StageQualification && competition.Phase == fixtures.PhaseQualificationPending:
		next = fixtures.PhaseQualificationDone
	case stage == fixtures.StageFinals && competition.Phase == fixtures.PhaseFinalsScheduled:
		next = fixtures.PhaseCompleted
	default:
		return competition.Phase, nil
	}

	open, err := q.CountIncompleteMatchesByStage(ctx, dbgen.CountIncompleteMatchesByStageParams{
		CompetitionID: competition.ID,
		Stage:         stage,
	})
	if err != nil {
		return "", fmt.Errorf("count open %s matches: %w", stage, err)
	}
	if open > 0 {
		return competition.Phase, nil
	}

	updated, err := q.UpdateCompetitionPhase(ctx, dbgen.UpdateCompetitionPhaseParams{Phase: next, ID: competition.ID})
	if err != nil {
		return "", fmt.Errorf("advance competition %d to %s: %w", competition.ID, next, err)
	}
	log.Ctx(ctx).Info().
		Int64("competition_id", competition.ID).
		Str("from", competition.Phase).
		Str("to", updated.Phase).
		Msg("Competition phase advanced")
	return updated.Phase, nil
}

// StartMatch marks a scheduled match as in progress.
func StartMatch(ctx context.Context, database *appdb.DB, matchID int64) (dbgen.Match, error) {
	var started dbgen.Match
	err := database.RunInTx(ctx, func(txdb *appdb.DB) error {
		match, err := getMatch(ctx, txdb.Queries, matchID)
		if err != nil {
			return err
		}
		if match.Archived {
			return ErrMatchArchived
		}
		if match.Status != MatchScheduled {
			return ErrMatchNotScheduled
		}
		started, err = txdb.Queries.UpdateMatchStatus(ctx, dbgen.UpdateMatchStatusParams{Status: MatchInProgress, ID: match.ID})
		if err != nil {
			return fmt.Errorf("start match %d: %w", match.ID, err)
		}
		return nil
	})
	return started, err
}

// MatchDetail is a match together with its result, when one exists.
type MatchDetail struct {
	Match     dbgen.Match
	Result    *dbgen.MatchResult
	Events    []dbgen.ResultEvent
	TeamNames map[int64]string
}

func GetMatchDetail(ctx context.Context, q *dbgen.Queries, matchID int64) (MatchDetail, error) {
	match, err := getMatch(ctx, q, matchID)
	if err != nil {
		return MatchDetail{}, err
	}
	names, err := teamNames(ctx, q, match.HomeTeamID, match.AwayTeamID)
	if err != nil {
		return MatchDetail{}, err
	}
	detail := MatchDetail{Match: match, TeamNames: names}

	result, err := q.GetMatchResultByMatch(ctx, match.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return detail, nil
		}
		return MatchDetail{}, fmt.Errorf("load result for match %d: %w", match.ID, err)
	}
	events, err := q.ListResultEvents(ctx, result.ID)
	if err != nil {
		return MatchDetail{}, fmt.Errorf("list events for result %d: %w", result.ID, err)
	}
	detail.Result = &result
	detail.Events = events
	return detail, nil
}
