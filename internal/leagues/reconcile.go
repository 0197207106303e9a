package leagues

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	appdb "github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/standings"
)

type Reconciliation struct {
	CompetitionID int64
	DryRun        bool
	Corrections   []standings.Correction
	Rows          []standings.Row
}

// ReconcileStandings replays every completed result of the competition and,
// unless dryRun is set, replaces the stored standings with the replayed rows
// when they differ.
func ReconcileStandings(ctx context.Context, database *appdb.DB, competitionID int64, dryRun bool) (Reconciliation, error) {
	var out Reconciliation
	err := database.RunInTx(ctx, func(txdb *appdb.DB) error {
		q := txdb.Queries
		if _, err := getCompetition(ctx, q, competitionID); err != nil {
			return err
		}

		stored, err := storedRows(ctx, q, competitionID)
		if err != nil {
			return err
		}
		replayed, err := replayTable(ctx, q, competitionID)
		if err != nil {
			return err
		}
		corrections := standings.Diff(stored, replayed)
		out = Reconciliation{
			CompetitionID: competitionID,
			DryRun:        dryRun,
			Corrections:   corrections,
			Rows:          replayed,
		}
		if dryRun || len(corrections) == 0 {
			return nil
		}

		if err := q.DeleteStandingsByCompetition(ctx, competitionID); err != nil {
			return fmt.Errorf("clear standings for competition %d: %w", competitionID, err)
		}
		for _, row := range replayed {
			if err := q.UpsertStanding(ctx, upsertParams(competitionID, row)); err != nil {
				return fmt.Errorf("write standing for team %d: %w", row.TeamID, err)
			}
		}
		return nil
	})
	if err != nil {
		return Reconciliation{}, err
	}

	if len(out.Corrections) > 0 {
		log.Ctx(ctx).Warn().
			Int64("competition_id", competitionID).
			Int("corrections", len(out.Corrections)).
			Bool("dry_run", dryRun).
			Msg("Standings drift detected")
	}
	return out, nil
}

// ReconcileAll reconciles every non-archived competition. It stops at the
// first failure and returns the reconciliations completed so far.
func ReconcileAll(ctx context.Context, database *appdb.DB, dryRun bool) ([]Reconciliation, error) {
	competitions, err := database.Queries.ListActiveCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active competitions: %w", err)
	}

	out := make([]Reconciliation, 0, len(competitions))
	for _, competition := range competitions {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		rec, err := ReconcileStandings(ctx, database, competition.ID, dryRun)
		if err != nil {
			return out, fmt.Errorf("reconcile competition %d: %w", competition.ID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
