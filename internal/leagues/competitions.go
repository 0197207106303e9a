package leagues

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

// Fixtures lists a competition's matches in round order with team names.
func Fixtures(ctx context.Context, q *dbgen.Queries, competitionID int64) (Schedule, error) {
	competition, err := getCompetition(ctx, q, competitionID)
	if err != nil {
		return Schedule{}, err
	}
	matches, err := q.ListMatchesByCompetition(ctx, competitionID)
	if err != nil {
		return Schedule{}, fmt.Errorf("list matches for competition %d: %w", competitionID, err)
	}
	ids := make([]int64, 0, len(matches)*2)
	for _, m := range matches {
		ids = append(ids, m.HomeTeamID, m.AwayTeamID)
	}
	names, err := teamNames(ctx, q, ids...)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{Competition: competition, Matches: matches, TeamNames: names}, nil
}

// ArchiveCompetition retires a season: the competition and all its matches
// are flagged archived. Results and standings stay readable.
func ArchiveCompetition(ctx context.Context, database *appdb.DB, competitionID int64) (dbgen.Competition, int64, error) {
	var (
		archived dbgen.Competition
		matches  int64
	)
	err := database.RunInTx(ctx, func(txdb *appdb.DB) error {
		q := txdb.Queries
		competition, err := getCompetition(ctx, q, competitionID)
		if err != nil {
			return err
		}
		if competition.Archived {
			return ErrCompetitionArchived
		}
		matches, err = q.ArchiveCompetitionMatches(ctx, competitionID)
		if err != nil {
			return fmt.Errorf("archive matches for competition %d: %w", competitionID, err)
		}
		archived, err = q.ArchiveCompetition(ctx, competitionID)
		if err != nil {
			return fmt.Errorf("archive competition %d: %w", competitionID, err)
		}
		return nil
	})
	if err != nil {
		return dbgen.Competition{}, 0, err
	}

	log.Ctx(ctx).Info().
		Int64("competition_id", competitionID).
		Int64("matches", matches).
		Msg("Competition archived")
	return archived, matches, nil
}
