package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gosimple/slug"

	"github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// CreateTeamWithRoster inserts an active team with rosterSize active players.
// Every player gets an email address so notification fan-out has recipients.
func CreateTeamWithRoster(t *testing.T, database *db.DB, name string, rosterSize int) dbgen.Team {
	t.Helper()

	ctx := context.Background()
	team, err := database.Queries.CreateTeam(ctx, dbgen.CreateTeamParams{
		Name: name,
		Slug: slug.Make(name),
	})
	if err != nil {
		t.Fatalf("create team %q: %v", name, err)
	}

	for i := 1; i <= rosterSize; i++ {
		_, err := database.Queries.CreatePlayer(ctx, dbgen.CreatePlayerParams{
			TeamID:    team.ID,
			FirstName: "Player",
			LastName:  fmt.Sprintf("%d", i),
			Email: sql.NullString{
				String: fmt.Sprintf("%s-%d@example.com", team.Slug, i),
				Valid:  true,
			},
			Role: "player",
		})
		if err != nil {
			t.Fatalf("create player %d for team %q: %v", i, name, err)
		}
	}

	return team
}

// CreateTeams creates count teams named "<prefix> N", each with rosterSize players.
func CreateTeams(t *testing.T, database *db.DB, prefix string, count, rosterSize int) []dbgen.Team {
	t.Helper()

	teams := make([]dbgen.Team, 0, count)
	for i := 1; i <= count; i++ {
		teams = append(teams, CreateTeamWithRoster(t, database, fmt.Sprintf("%s %d", prefix, i), rosterSize))
	}
	return teams
}

// TeamIDs returns the IDs of teams in order.
func TeamIDs(teams []dbgen.Team) []int64 {
	ids := make([]int64, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}
	return ids
}
