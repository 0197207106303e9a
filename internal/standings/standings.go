// Package standings holds the points table arithmetic: applying a single
// result to two rows, replaying a result set from scratch and ordering rows.
package standings

import (
	"errors"
	"fmt"
	"sort"
)

const (
	PointsWin          = 3
	PointsShootoutWin  = 2
	PointsShootoutLoss = 1
	PointsDraw         = 1
	PointsLoss         = 0
)

var ErrInvalidResult = errors.New("invalid result")

type Row struct {
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	Group          string `json:"group,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	Points         int    `json:"points"`
	ShootoutWins   int    `json:"shootoutWins"`
	ShootoutLosses int    `json:"shootoutLosses"`
}

func (r Row) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// SameTotals reports whether both rows carry identical counters.
func (r Row) SameTotals(other Row) bool {
	return r.Played == other.Played &&
		r.Won == other.Won &&
		r.Drawn == other.Drawn &&
		r.Lost == other.Lost &&
		r.GoalsFor == other.GoalsFor &&
		r.GoalsAgainst == other.GoalsAgainst &&
		r.Points == other.Points &&
		r.ShootoutWins == other.ShootoutWins &&
		r.ShootoutLosses == other.ShootoutLosses
}

// Result is a final score. Penalties are only allowed on a draw and must
// then be present for both sides and differ.
type Result struct {
	HomeTeamID    int64
	AwayTeamID    int64
	HomeScore     int
	AwayScore     int
	HomePenalties *int
	AwayPenalties *int
}

func (res Result) HasShootout() bool {
	return res.HomePenalties != nil && res.AwayPenalties != nil
}

func (res Result) Validate() error {
	if res.HomeTeamID == res.AwayTeamID {
		return fmt.Errorf("%w: home and away team must differ", ErrInvalidResult)
	}
	if res.HomeScore < 0 || res.AwayScore < 0 {
		return fmt.Errorf("%w: scores must be 0 or greater", ErrInvalidResult)
	}
	if (res.HomePenalties == nil) != (res.AwayPenalties == nil) {
		return fmt.Errorf("%w: both penalty scores are required for a shootout", ErrInvalidResult)
	}
	if !res.HasShootout() {
		return nil
	}
	if res.HomeScore != res.AwayScore {
		return fmt.Errorf("%w: penalties are only allowed when the match is drawn", ErrInvalidResult)
	}
	if *res.HomePenalties < 0 || *res.AwayPenalties < 0 {
		return fmt.Errorf("%w: penalty scores must be 0 or greater", ErrInvalidResult)
	}
	if *res.HomePenalties == *res.AwayPenalties {
		return fmt.Errorf("%w: a shootout cannot end level", ErrInvalidResult)
	}
	return nil
}

// Apply returns the home and away rows after res. The inputs are not modified.
func Apply(home, away Row, res Result) (Row, Row, error) {
	if err := res.Validate(); err != nil {
		return home, away, err
	}
	if home.TeamID != res.HomeTeamID || away.TeamID != res.AwayTeamID {
		return home, away, fmt.Errorf("%w: rows do not match the result's teams", ErrInvalidResult)
	}

	home.Played++
	away.Played++
	home.GoalsFor += res.HomeScore
	home.GoalsAgainst += res.AwayScore
	away.GoalsFor += res.AwayScore
	away.GoalsAgainst += res.HomeScore

	switch {
	case res.HomeScore > res.AwayScore:
		home.Won++
		home.Points += PointsWin
		away.Lost++
		away.Points += PointsLoss
	case res.HomeScore < res.AwayScore:
		away.Won++
		away.Points += PointsWin
		home.Lost++
		home.Points += PointsLoss
	case res.HasShootout():
		home.Drawn++
		away.Drawn++
		if *res.HomePenalties > *res.AwayPenalties {
			home.ShootoutWins++
			home.Points += PointsShootoutWin
			away.ShootoutLosses++
			away.Points += PointsShootoutLoss
		} else {
			away.ShootoutWins++
			away.Points += PointsShootoutWin
			home.ShootoutLosses++
			home.Points += PointsShootoutLoss
		}
	default:
		home.Drawn++
		away.Drawn++
		home.Points += PointsDraw
		away.Points += PointsDraw
	}

	return home, away, nil
}

// Replay rebuilds a table from scratch. Seed rows supply names and groups
// (their counters are ignored) so teams without results still appear.
// The returned rows are sorted.
func Replay(seed []Row, results []Result) ([]Row, error) {
	table := make(map[int64]*Row, len(seed))
	order := make([]int64, 0, len(seed))
	ensure := func(teamID int64) *Row {
		if row, ok := table[teamID]; ok {
			return row
		}
		row := &Row{TeamID: teamID}
		table[teamID] = row
		order = append(order, teamID)
		return row
	}

	for _, s := range seed {
		row := ensure(s.TeamID)
		row.TeamName = s.TeamName
		row.Group = s.Group
	}

	for idx, res := range results {
		home := ensure(res.HomeTeamID)
		away := ensure(res.AwayTeamID)
		newHome, newAway, err := Apply(*home, *away, res)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", idx, err)
		}
		*home = newHome
		*away = newAway
	}

	rows := make([]Row, 0, len(order))
	for _, teamID := range order {
		rows = append(rows, *table[teamID])
	}
	Sort(rows)
	return rows, nil
}

// Sort orders rows by points, goal difference, goals for and shootout wins,
// all descending, then by team name and ID for a stable presentation.
func Sort(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})
}

func less(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference() != b.GoalDifference() {
		return a.GoalDifference() > b.GoalDifference()
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	if a.ShootoutWins != b.ShootoutWins {
		return a.ShootoutWins > b.ShootoutWins
	}
	if a.TeamName != b.TeamName {
		return a.TeamName < b.TeamName
	}
	return a.TeamID < b.TeamID
}

// ByGroup splits sorted rows by group label, keeping order within each group.
func ByGroup(rows []Row) map[string][]Row {
	groups := make(map[string][]Row)
	for _, row := range rows {
		groups[row.Group] = append(groups[row.Group], row)
	}
	return groups
}

// Correction is a row whose stored counters differ from the replayed ones.
type Correction struct {
	TeamID int64 `json:"teamId"`
	Before Row   `json:"before"`
	After  Row   `json:"after"`
}

// Diff compares stored rows against replayed rows. Stored rows with no
// replayed counterpart are reported with a zeroed After.
func Diff(stored, replayed []Row) []Correction {
	storedByID := make(map[int64]Row, len(stored))
	for _, row := range stored {
		storedByID[row.TeamID] = row
	}

	var corrections []Correction
	seen := make(map[int64]struct{}, len(replayed))
	for _, after := range replayed {
		seen[after.TeamID] = struct{}{}
		before, ok := storedByID[after.TeamID]
		if !ok {
			before = Row{TeamID: after.TeamID, TeamName: after.TeamName, Group: after.Group}
		}
		if before.SameTotals(after) && before.Group == after.Group {
			continue
		}
		corrections = append(corrections, Correction{TeamID: after.TeamID, Before: before, After: after})
	}
	for _, before := range stored {
		if _, ok := seen[before.TeamID]; ok {
			continue
		}
		corrections = append(corrections, Correction{
			TeamID: before.TeamID,
			Before: before,
			After:  Row{TeamID: before.TeamID, TeamName: before.TeamName, Group: before.Group},
		})
	}
	return corrections
}
