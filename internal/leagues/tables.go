package leagues

import (
	"context"
	"fmt"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/standings"
)

// Table is the ordered standings of a competition. Mini-leagues also carry
// one ordered table per qualification group.
type Table struct {
	Competition dbgen.Competition
	Rows        []standings.Row
	Groups      map[string][]standings.Row
}

// CompetitionTable reads the materialised standings in ranking order.
func CompetitionTable(ctx context.Context, q *dbgen.Queries, competitionID int64) (Table, error) {
	competition, err := getCompetition(ctx, q, competitionID)
	if err != nil {
		return Table{}, err
	}
	rows, err := storedRows(ctx, q, competitionID)
	if err != nil {
		return Table{}, err
	}
	standings.Sort(rows)

	table := Table{Competition: competition, Rows: rows}
	if competition.Mode == fixtures.ModeMiniLeague {
		table.Groups = standings.ByGroup(rows)
	}
	return table, nil
}

func storedRows(ctx context.Context, q *dbgen.Queries, competitionID int64) ([]standings.Row, error) {
	listed, err := q.ListStandingsByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list standings for competition %d: %w", competitionID, err)
	}
	rows := make([]standings.Row, 0, len(listed))
	for _, s := range listed {
		rows = append(rows, rowFromListed(s))
	}
	return rows, nil
}

// replayTable rebuilds standings from the competition's completed results.
// Every team with a fixture in stages is seeded, so teams without results
// still appear. A nil stages slice includes every stage.
func replayTable(ctx context.Context, q *dbgen.Queries, competitionID int64, stages ...string) ([]standings.Row, error) {
	include := func(stage string) bool {
		if len(stages) == 0 {
			return true
		}
		for _, s := range stages {
			if s == stage {
				return true
			}
		}
		return false
	}

	matches, err := q.ListMatchesByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list matches for competition %d: %w", competitionID, err)
	}

	groups := make(map[int64]string)
	var order []int64
	for _, m := range matches {
		if !include(m.Stage) {
			continue
		}
		for _, id := range []int64{m.HomeTeamID, m.AwayTeamID} {
			if _, ok := groups[id]; !ok {
				order = append(order, id)
				groups[id] = ""
			}
			// Finals matches carry no group; keep the qualification label.
			if m.GroupLabel != "" {
				groups[id] = m.GroupLabel
			}
		}
	}

	names, err := teamNames(ctx, q, order...)
	if err != nil {
		return nil, err
	}
	seed := make([]standings.Row, 0, len(order))
	for _, id := range order {
		seed = append(seed, standings.Row{TeamID: id, TeamName: names[id], Group: groups[id]})
	}

	completed, err := q.ListCompletedResultsByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list results for competition %d: %w", competitionID, err)
	}
	results := make([]standings.Result, 0, len(completed))
	for _, r := range completed {
		if !include(r.Stage) {
			continue
		}
		results = append(results, resultFromRow(r))
	}
	return standings.Replay(seed, results)
}

// GroupTables recomputes the mini-league group tables from qualification
// results only.
func GroupTables(ctx context.Context, q *dbgen.Queries, competitionID int64) (map[string][]standings.Row, error) {
	rows, err := replayTable(ctx, q, competitionID, fixtures.StageQualification)
	if err != nil {
		return nil, err
	}
	return standings.ByGroup(rows), nil
}
