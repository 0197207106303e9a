package standings

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func intPtr(v int) *int {
	return &v
}

func TestApplyHomeWin(t *testing.T) {
	home, away, err := Apply(Row{TeamID: 1}, Row{TeamID: 2}, Result{
		HomeTeamID: 1,
		AwayTeamID: 2,
		HomeScore:  3,
		AwayScore:  1,
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if home.Points != 3 || home.GoalsFor != 3 || home.GoalsAgainst != 1 || home.Won != 1 || home.Played != 1 {
		t.Fatalf("unexpected home row: %+v", home)
	}
	if away.Points != 0 || away.GoalsFor != 1 || away.GoalsAgainst != 3 || away.Lost != 1 || away.Played != 1 {
		t.Fatalf("unexpected away row: %+v", away)
	}
}

func TestApplyAwayWinAndDraw(t *testing.T) {
	home, away, err := Apply(Row{TeamID: 1}, Row{TeamID: 2}, Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 0, AwayScore: 2})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if home.Points != 0 || away.Points != 3 || away.Won != 1 || home.Lost != 1 {
		t.Fatalf("unexpected rows after away win: %+v %+v", home, away)
	}

	home, away, err = Apply(home, away, Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 1, AwayScore: 1})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if home.Points != 1 || away.Points != 4 || home.Drawn != 1 || away.Drawn != 1 {
		t.Fatalf("unexpected rows after draw: %+v %+v", home, away)
	}
	if home.ShootoutWins != 0 || away.ShootoutLosses != 0 {
		t.Fatalf("plain draw should not touch shootout counters")
	}
}

func TestApplyShootoutSplitsTwoAndOne(t *testing.T) {
	tests := []struct {
		name      string
		homePens  int
		awayPens  int
		homePts   int
		awayPts   int
		homeSOWin int
		awaySOWin int
	}{
		{name: "home wins shootout", homePens: 5, awayPens: 4, homePts: 2, awayPts: 1, homeSOWin: 1},
		{name: "away wins shootout", homePens: 2, awayPens: 4, homePts: 1, awayPts: 2, awaySOWin: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, away, err := Apply(Row{TeamID: 1}, Row{TeamID: 2}, Result{
				HomeTeamID:    1,
				AwayTeamID:    2,
				HomeScore:     2,
				AwayScore:     2,
				HomePenalties: intPtr(tt.homePens),
				AwayPenalties: intPtr(tt.awayPens),
			})
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if home.Points != tt.homePts || away.Points != tt.awayPts {
				t.Fatalf("expected %d/%d points, got %d/%d", tt.homePts, tt.awayPts, home.Points, away.Points)
			}
			if home.Points+away.Points != 3 || home.Points == 3 || away.Points == 3 {
				t.Fatalf("shootout must never award 3/0")
			}
			if home.ShootoutWins != tt.homeSOWin || away.ShootoutWins != tt.awaySOWin {
				t.Fatalf("unexpected shootout wins: %+v %+v", home, away)
			}
			if home.Drawn != 1 || away.Drawn != 1 {
				t.Fatalf("shootout match should count as drawn")
			}
		})
	}
}

func TestResultValidate(t *testing.T) {
	tests := []struct {
		name string
		res  Result
	}{
		{name: "same team", res: Result{HomeTeamID: 1, AwayTeamID: 1}},
		{name: "negative score", res: Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: -1}},
		{name: "penalties on decided match", res: Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 1, HomePenalties: intPtr(3), AwayPenalties: intPtr(2)}},
		{name: "single penalty score", res: Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 1, AwayScore: 1, HomePenalties: intPtr(3)}},
		{name: "level shootout", res: Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 1, AwayScore: 1, HomePenalties: intPtr(3), AwayPenalties: intPtr(3)}},
		{name: "negative penalties", res: Result{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 1, AwayScore: 1, HomePenalties: intPtr(-1), AwayPenalties: intPtr(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.res.Validate(); !errors.Is(err, ErrInvalidResult) {
				t.Fatalf("expected ErrInvalidResult, got %v", err)
			}
		})
	}
}

func TestSortOrdering(t *testing.T) {
	rows := []Row{
		{TeamID: 1, TeamName: "Alpha", Points: 6, GoalsFor: 5, GoalsAgainst: 4},
		{TeamID: 2, TeamName: "Bravo", Points: 6, GoalsFor: 7, GoalsAgainst: 3},
		{TeamID: 3, TeamName: "Charlie", Points: 6, GoalsFor: 9, GoalsAgainst: 5},
		{TeamID: 4, TeamName: "Delta", Points: 9, GoalsFor: 1, GoalsAgainst: 8},
		{TeamID: 5, TeamName: "Echo", Points: 4, GoalsFor: 4, GoalsAgainst: 4, ShootoutWins: 1},
		{TeamID: 6, TeamName: "Foxtrot", Points: 4, GoalsFor: 4, GoalsAgainst: 4},
		{TeamID: 8, TeamName: "Golf", Points: 1},
		{TeamID: 7, TeamName: "Golf", Points: 1},
	}
	Sort(rows)

	want := []int64{4, 3, 2, 1, 5, 6, 7, 8}
	for i, id := range want {
		if rows[i].TeamID != id {
			t.Fatalf("position %d: expected team %d, got %d (%+v)", i, id, rows[i].TeamID, rows)
		}
	}
}

func TestReplayMatchesIncrementalUpdates(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 29))
	teamIDs := []int64{1, 2, 3, 4, 5, 6}

	incremental := make(map[int64]Row)
	seed := make([]Row, 0, len(teamIDs))
	for _, id := range teamIDs {
		row := Row{TeamID: id, TeamName: string(rune('A' + id))}
		incremental[id] = row
		seed = append(seed, row)
	}

	var results []Result
	for i := 0; i < 200; i++ {
		home := teamIDs[rng.IntN(len(teamIDs))]
		away := teamIDs[rng.IntN(len(teamIDs))]
		if home == away {
			continue
		}
		res := Result{HomeTeamID: home, AwayTeamID: away, HomeScore: rng.IntN(5), AwayScore: rng.IntN(5)}
		if res.HomeScore == res.AwayScore && rng.IntN(2) == 0 {
			res.HomePenalties = intPtr(5)
			res.AwayPenalties = intPtr(rng.IntN(5))
		}
		newHome, newAway, err := Apply(incremental[home], incremental[away], res)
		if err != nil {
			t.Fatalf("apply result %d: %v", i, err)
		}
		incremental[home] = newHome
		incremental[away] = newAway
		results = append(results, res)
	}

	replayed, err := Replay(seed, results)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(replayed) != len(teamIDs) {
		t.Fatalf("expected %d rows, got %d", len(teamIDs), len(replayed))
	}
	for _, row := range replayed {
		if !row.SameTotals(incremental[row.TeamID]) {
			t.Fatalf("team %d: replay %+v differs from incremental %+v", row.TeamID, row, incremental[row.TeamID])
		}
	}
	if corrections := Diff(replayed, replayed); len(corrections) != 0 {
		t.Fatalf("expected no corrections comparing a table to itself, got %d", len(corrections))
	}
}

func TestReplayKeepsSeededTeamsWithoutResults(t *testing.T) {
	rows, err := Replay([]Row{
		{TeamID: 1, TeamName: "Alpha", Group: "A"},
		{TeamID: 2, TeamName: "Bravo", Group: "A"},
		{TeamID: 3, TeamName: "Charlie", Group: "B"},
	}, []Result{{HomeTeamID: 2, AwayTeamID: 1, HomeScore: 2, AwayScore: 0}})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].TeamID != 2 {
		t.Fatalf("expected winner first, got %+v", rows[0])
	}

	groups := ByGroup(rows)
	if len(groups["A"]) != 2 || len(groups["B"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", groups)
	}
	if groups["A"][0].TeamID != 2 || groups["A"][1].TeamID != 1 {
		t.Fatalf("expected group order to follow table order, got %+v", groups["A"])
	}
}

func TestDiffReportsDriftedRows(t *testing.T) {
	replayed := []Row{
		{TeamID: 1, TeamName: "Alpha", Played: 2, Won: 2, Points: 6, GoalsFor: 4, GoalsAgainst: 1},
		{TeamID: 2, TeamName: "Bravo", Played: 2, Lost: 2, GoalsFor: 1, GoalsAgainst: 4},
		{TeamID: 3, TeamName: "Charlie"},
	}
	stored := []Row{
		{TeamID: 1, TeamName: "Alpha", Played: 1, Won: 1, Points: 3, GoalsFor: 2, GoalsAgainst: 0},
		{TeamID: 2, TeamName: "Bravo", Played: 2, Lost: 2, GoalsFor: 1, GoalsAgainst: 4},
		{TeamID: 9, TeamName: "Stale", Played: 1, Points: 3},
	}

	corrections := Diff(stored, replayed)
	if len(corrections) != 2 {
		t.Fatalf("expected 2 corrections, got %d: %+v", len(corrections), corrections)
	}
	if corrections[0].TeamID != 1 || corrections[0].After.Points != 6 || corrections[0].Before.Points != 3 {
		t.Fatalf("unexpected first correction: %+v", corrections[0])
	}
	if corrections[1].TeamID != 9 || corrections[1].After.Played != 0 {
		t.Fatalf("expected stale row to be zeroed, got %+v", corrections[1])
	}
}
