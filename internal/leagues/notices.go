package leagues

import (
	"context"
	"fmt"
	"time"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/email"
	"github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/notify"
)

func stageTitle(stage string) string {
	switch stage {
	case fixtures.StageQualification:
		return "Qualification Fixtures"
	case fixtures.StageFinals:
		return "Finals Fixtures"
	default:
		return "Fixtures"
	}
}

// enqueueFixtureNotices queues one fixture list per team that plays in matches.
func enqueueFixtureNotices(ctx context.Context, q *dbgen.Queries, competition dbgen.Competition, matches []dbgen.Match, names map[int64]string, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.UTC
	}
	perTeam := make(map[int64][]email.FixtureLine)
	var order []int64
	stage := ""
	for _, m := range matches {
		stage = m.Stage
		line := email.FixtureLine{
			Round:     int(m.Round),
			HomeTeam:  names[m.HomeTeamID],
			AwayTeam:  names[m.AwayTeamID],
			KickoffAt: m.ScheduledAt.In(loc),
		}
		for _, teamID := range []int64{m.HomeTeamID, m.AwayTeamID} {
			if _, ok := perTeam[teamID]; !ok {
				order = append(order, teamID)
			}
			perTeam[teamID] = append(perTeam[teamID], line)
		}
	}

	queued := 0
	for _, teamID := range order {
		message := email.BuildFixturesPublished(email.FixturesDetails{
			CompetitionName: competition.Name,
			TeamName:        names[teamID],
			Stage:           stageTitle(stage),
			Fixtures:        perTeam[teamID],
		})
		n, err := notify.EnqueueTeam(ctx, q, teamID, message)
		if err != nil {
			return queued, fmt.Errorf("queue fixtures for team %d: %w", teamID, err)
		}
		queued += n
	}
	return queued, nil
}

func enqueueResultNotices(ctx context.Context, q *dbgen.Queries, competition dbgen.Competition, match dbgen.Match, result dbgen.MatchResult, names map[int64]string, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.UTC
	}
	details := email.ResultDetails{
		CompetitionName: competition.Name,
		HomeTeam:        names[match.HomeTeamID],
		AwayTeam:        names[match.AwayTeamID],
		HomeScore:       int(result.HomeScore),
		AwayScore:       int(result.AwayScore),
		KickoffAt:       match.ScheduledAt.In(loc),
	}
	if result.HomePenalties.Valid && result.AwayPenalties.Valid {
		home := int(result.HomePenalties.Int64)
		away := int(result.AwayPenalties.Int64)
		details.HomePenalties = &home
		details.AwayPenalties = &away
	}
	message := email.BuildResultPosted(details)

	queued := 0
	for _, teamID := range []int64{match.HomeTeamID, match.AwayTeamID} {
		n, err := notify.EnqueueTeam(ctx, q, teamID, message)
		if err != nil {
			return queued, fmt.Errorf("queue result for team %d: %w", teamID, err)
		}
		queued += n
	}
	return queued, nil
}
