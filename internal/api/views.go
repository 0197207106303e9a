package api

import (
	"time"

	"github.com/codr1/Matchday/internal/api/apiutil"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/standings"
)

type CompetitionView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Mode      string `json:"mode"`
	Phase     string `json:"phase"`
	StartDate string `json:"startDate"`
	Test      bool   `json:"test"`
	Archived  bool   `json:"archived"`
}

type MatchView struct {
	ID            int64     `json:"id"`
	CompetitionID int64     `json:"competitionId"`
	Round         int64     `json:"round"`
	Stage         string    `json:"stage"`
	Group         string    `json:"group,omitempty"`
	HomeTeamID    int64     `json:"homeTeamId"`
	HomeTeam      string    `json:"homeTeam"`
	AwayTeamID    int64     `json:"awayTeamId"`
	AwayTeam      string    `json:"awayTeam"`
	KickoffAt     time.Time `json:"kickoffAt"`
	Status        string    `json:"status"`
	Mode          string    `json:"mode"`
	Test          bool      `json:"test"`
	Archived      bool      `json:"archived"`
}

type EventView struct {
	PlayerID int64  `json:"playerId"`
	TeamID   int64  `json:"teamId"`
	Kind     string `json:"kind"`
	Minute   *int   `json:"minute,omitempty"`
}

type ResultView struct {
	HomeScore     int         `json:"homeScore"`
	AwayScore     int         `json:"awayScore"`
	HomePenalties *int        `json:"homePenalties,omitempty"`
	AwayPenalties *int        `json:"awayPenalties,omitempty"`
	Events        []EventView `json:"events"`
	RecordedAt    time.Time   `json:"recordedAt"`
}

type StandingView struct {
	Position       int    `json:"position,omitempty"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	Group          string `json:"group,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	ShootoutWins   int    `json:"shootoutWins"`
	ShootoutLosses int    `json:"shootoutLosses"`
}

func NewCompetitionView(c dbgen.Competition) CompetitionView {
	return CompetitionView{
		ID:        c.ID,
		Name:      c.Name,
		Mode:      c.Mode,
		Phase:     c.Phase,
		StartDate: c.StartDate.Format(apiutil.DateLayout),
		Test:      c.IsTest,
		Archived:  c.Archived,
	}
}

func NewMatchView(m dbgen.Match, names map[int64]string, loc *time.Location) MatchView {
	if loc == nil {
		loc = time.UTC
	}
	return MatchView{
		ID:            m.ID,
		CompetitionID: m.CompetitionID,
		Round:         m.Round,
		Stage:         m.Stage,
		Group:         m.GroupLabel,
		HomeTeamID:    m.HomeTeamID,
		HomeTeam:      names[m.HomeTeamID],
		AwayTeamID:    m.AwayTeamID,
		AwayTeam:      names[m.AwayTeamID],
		KickoffAt:     m.ScheduledAt.In(loc),
		Status:        m.Status,
		Mode:          m.Mode,
		Test:          m.IsTest,
		Archived:      m.Archived,
	}
}

func NewMatchViews(matches []dbgen.Match, names map[int64]string, loc *time.Location) []MatchView {
	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, NewMatchView(m, names, loc))
	}
	return views
}

func NewResultView(result dbgen.MatchResult, events []dbgen.ResultEvent) ResultView {
	view := ResultView{
		HomeScore:     int(result.HomeScore),
		AwayScore:     int(result.AwayScore),
		HomePenalties: apiutil.FromNullInt64(result.HomePenalties),
		AwayPenalties: apiutil.FromNullInt64(result.AwayPenalties),
		Events:        make([]EventView, 0, len(events)),
		RecordedAt:    result.CreatedAt,
	}
	for _, e := range events {
		view.Events = append(view.Events, EventView{
			PlayerID: e.PlayerID,
			TeamID:   e.TeamID,
			Kind:     e.Kind,
			Minute:   apiutil.FromNullInt64(e.Minute),
		})
	}
	return view
}

func NewStandingView(row standings.Row) StandingView {
	return StandingView{
		TeamID:         row.TeamID,
		TeamName:       row.TeamName,
		Group:          row.Group,
		Played:         row.Played,
		Won:            row.Won,
		Drawn:          row.Drawn,
		Lost:           row.Lost,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference(),
		Points:         row.Points,
		ShootoutWins:   row.ShootoutWins,
		ShootoutLosses: row.ShootoutLosses,
	}
}

// NewStandingViews numbers already ordered rows from 1.
func NewStandingViews(rows []standings.Row) []StandingView {
	views := make([]StandingView, 0, len(rows))
	for i, row := range rows {
		view := NewStandingView(row)
		view.Position = i + 1
		views = append(views, view)
	}
	return views
}

type ScheduleResponse struct {
	Competition CompetitionView `json:"competition"`
	Matches     []MatchView     `json:"matches"`
}

func NewScheduleResponse(schedule leagues.Schedule, loc *time.Location) ScheduleResponse {
	return ScheduleResponse{
		Competition: NewCompetitionView(schedule.Competition),
		Matches:     NewMatchViews(schedule.Matches, schedule.TeamNames, loc),
	}
}
