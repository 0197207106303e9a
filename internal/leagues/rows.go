package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/standings"
)

func rowFromStanding(s dbgen.Standing, teamName string) standings.Row {
	return standings.Row{
		TeamID:         s.TeamID,
		TeamName:       teamName,
		Group:          s.GroupLabel,
		Played:         int(s.Played),
		Won:            int(s.Won),
		Drawn:          int(s.Drawn),
		Lost:           int(s.Lost),
		GoalsFor:       int(s.GoalsFor),
		GoalsAgainst:   int(s.GoalsAgainst),
		Points:         int(s.Points),
		ShootoutWins:   int(s.ShootoutWins),
		ShootoutLosses: int(s.ShootoutLosses),
	}
}

func rowFromListed(s dbgen.ListStandingsByCompetitionRow) standings.Row {
	return standings.Row{
		TeamID:         s.TeamID,
		TeamName:       s.TeamName,
		Group:          s.GroupLabel,
		Played:         int(s.Played),
		Won:            int(s.Won),
		Drawn:          int(s.Drawn),
		Lost:           int(s.Lost),
		GoalsFor:       int(s.GoalsFor),
		GoalsAgainst:   int(s.GoalsAgainst),
		Points:         int(s.Points),
		ShootoutWins:   int(s.ShootoutWins),
		ShootoutLosses: int(s.ShootoutLosses),
	}
}

func upsertParams(competitionID int64, row standings.Row) dbgen.UpsertStandingParams {
	return dbgen.UpsertStandingParams{
		CompetitionID:  competitionID,
		TeamID:         row.TeamID,
		GroupLabel:     row.Group,
		Played:         int64(row.Played),
		Won:            int64(row.Won),
		Drawn:          int64(row.Drawn),
		Lost:           int64(row.Lost),
		GoalsFor:       int64(row.GoalsFor),
		GoalsAgainst:   int64(row.GoalsAgainst),
		Points:         int64(row.Points),
		ShootoutWins:   int64(row.ShootoutWins),
		ShootoutLosses: int64(row.ShootoutLosses),
	}
}

// loadRow returns the stored row for a team, or an empty row in group when
// none exists yet.
func loadRow(ctx context.Context, q *dbgen.Queries, competitionID, teamID int64, group, teamName string) (standings.Row, error) {
	stored, err := q.GetStanding(ctx, dbgen.GetStandingParams{CompetitionID: competitionID, TeamID: teamID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return standings.Row{TeamID: teamID, TeamName: teamName, Group: group}, nil
		}
		return standings.Row{}, fmt.Errorf("load standing for team %d: %w", teamID, err)
	}
	return rowFromStanding(stored, teamName), nil
}

func resultFromRow(r dbgen.ListCompletedResultsByCompetitionRow) standings.Result {
	res := standings.Result{
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		HomeScore:  int(r.HomeScore),
		AwayScore:  int(r.AwayScore),
	}
	if r.HomePenalties.Valid && r.AwayPenalties.Valid {
		home := int(r.HomePenalties.Int64)
		away := int(r.AwayPenalties.Int64)
		res.HomePenalties = &home
		res.AwayPenalties = &away
	}
	return res
}
