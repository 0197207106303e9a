package leagues

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/fixtures"
)

// loadFixtureTeams reads the teams in request order together with their
// active roster size.
func loadFixtureTeams(ctx context.Context, q *dbgen.Queries, teamIDs []int64) ([]fixtures.Team, map[int64]string, error) {
	teams := make([]fixtures.Team, 0, len(teamIDs))
	names := make(map[int64]string, len(teamIDs))
	for _, id := range teamIDs {
		team, err := q.GetTeam(ctx, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil, fmt.Errorf("%w: %d", ErrTeamNotFound, id)
			}
			return nil, nil, fmt.Errorf("load team %d: %w", id, err)
		}
		rosterSize, err := q.CountActivePlayersByTeam(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf("count roster for team %d: %w", id, err)
		}
		teams = append(teams, fixtures.Team{
			ID:         team.ID,
			Name:       team.Name,
			Active:     team.Active,
			RosterSize: int(rosterSize),
		})
		names[team.ID] = team.Name
	}
	return teams, names, nil
}

// teamNames resolves display names for the given team IDs.
func teamNames(ctx context.Context, q *dbgen.Queries, teamIDs ...int64) (map[int64]string, error) {
	names := make(map[int64]string, len(teamIDs))
	for _, id := range teamIDs {
		if _, ok := names[id]; ok {
			continue
		}
		team, err := q.GetTeam(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load team %d: %w", id, err)
		}
		names[id] = team.Name
	}
	return names, nil
}

func getCompetition(ctx context.Context, q *dbgen.Queries, competitionID int64) (dbgen.Competition, error) {
	competition, err := q.GetCompetition(ctx, competitionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Competition{}, ErrCompetitionNotFound
		}
		return dbgen.Competition{}, fmt.Errorf("load competition %d: %w", competitionID, err)
	}
	return competition, nil
}

func getMatch(ctx context.Context, q *dbgen.Queries, matchID int64) (dbgen.Match, error) {
	match, err := q.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dbgen.Match{}, ErrMatchNotFound
		}
		return dbgen.Match{}, fmt.Errorf("load match %d: %w", matchID, err)
	}
	return match, nil
}
