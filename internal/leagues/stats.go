package leagues

import (
	"context"
	"fmt"
	"sort"
	"strings"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

const (
	FantasyPointsGoal       = 4
	FantasyPointsYellowCard = -1
	FantasyPointsRedCard    = -3
)

type PlayerStat struct {
	PlayerID      int64
	TeamID        int64
	Name          string
	Goals         int
	YellowCards   int
	RedCards      int
	FantasyPoints int
}

func FantasyPoints(goals, yellowCards, redCards int) int {
	return goals*FantasyPointsGoal + yellowCards*FantasyPointsYellowCard + redCards*FantasyPointsRedCard
}

// PlayerStats totals match events per player for a competition, ordered by
// fantasy points then goals.
func PlayerStats(ctx context.Context, q *dbgen.Queries, competitionID int64) ([]PlayerStat, error) {
	if _, err := getCompetition(ctx, q, competitionID); err != nil {
		return nil, err
	}
	totals, err := q.ListPlayerEventTotalsByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list player totals for competition %d: %w", competitionID, err)
	}

	stats := make([]PlayerStat, 0, len(totals))
	for _, t := range totals {
		stat := PlayerStat{
			PlayerID:    t.PlayerID,
			TeamID:      t.TeamID,
			Name:        strings.TrimSpace(t.FirstName + " " + t.LastName),
			Goals:       int(t.Goals),
			YellowCards: int(t.YellowCards),
			RedCards:    int(t.RedCards),
		}
		stat.FantasyPoints = FantasyPoints(stat.Goals, stat.YellowCards, stat.RedCards)
		stats = append(stats, stat)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].FantasyPoints != stats[j].FantasyPoints {
			return stats[i].FantasyPoints > stats[j].FantasyPoints
		}
		if stats[i].Goals != stats[j].Goals {
			return stats[i].Goals > stats[j].Goals
		}
		return stats[i].PlayerID < stats[j].PlayerID
	})
	return stats, nil
}
