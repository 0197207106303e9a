package fixtures

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateMiniLeagueQualifiers(t *testing.T) {
	teams := makeTeams(10)
	start := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)
	fixtures, err := GenerateMiniLeagueQualifiers(MiniLeagueParams{
		Teams:     teams,
		StartDate: start,
		Policy:    IntervalPolicy{Start: Clock{Hour: 9}, IntervalMinutes: 60},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(fixtures) != 20 {
		t.Fatalf("expected 20 qualification fixtures, got %d", len(fixtures))
	}

	groupOf := func(id int64) string {
		if id <= 5 {
			return GroupA
		}
		return GroupB
	}
	pairs := make(map[[2]int64]bool)
	perRound := make(map[int]int)
	for _, f := range fixtures {
		if f.Stage != StageQualification {
			t.Fatalf("expected qualification stage, got %q", f.Stage)
		}
		if f.Round < 1 || f.Round > 5 {
			t.Fatalf("unexpected round %d", f.Round)
		}
		if groupOf(f.HomeTeamID) != f.Group || groupOf(f.AwayTeamID) != f.Group {
			t.Fatalf("fixture %d-%d crosses groups", f.HomeTeamID, f.AwayTeamID)
		}
		lo, hi := f.HomeTeamID, f.AwayTeamID
		if lo > hi {
			lo, hi = hi, lo
		}
		if pairs[[2]int64{lo, hi}] {
			t.Fatalf("pair %d-%d scheduled twice", lo, hi)
		}
		pairs[[2]int64{lo, hi}] = true
		perRound[f.Round]++

		wantDate := start.AddDate(0, 0, 7*(f.Round-1))
		wantKickoff := wantDate.Add(time.Duration(9+f.Slot) * time.Hour)
		if !f.KickoffAt.Equal(wantKickoff) {
			t.Fatalf("round %d slot %d: expected %s, got %s", f.Round, f.Slot, wantKickoff, f.KickoffAt)
		}
	}
	for round := 1; round <= 5; round++ {
		if perRound[round] != 4 {
			t.Fatalf("round %d: expected 4 matches, got %d", round, perRound[round])
		}
	}
}

func TestGenerateMiniLeagueRejectsWrongTeamCount(t *testing.T) {
	for _, n := range []int{0, 2, 9, 11, 12} {
		_, err := GenerateMiniLeagueQualifiers(MiniLeagueParams{
			Teams:     makeTeams(n),
			StartDate: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
			Policy:    ExplicitTimesPolicy{Times: []Clock{{Hour: 10}}},
		})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("n=%d: expected validation error, got %v", n, err)
		}
	}
}

func TestGenerateMiniLeagueRejectsShortRoster(t *testing.T) {
	teams := makeTeams(10)
	teams[7].RosterSize = 3
	_, err := GenerateMiniLeagueQualifiers(MiniLeagueParams{
		Teams:     teams,
		StartDate: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Policy:    ExplicitTimesPolicy{Times: []Clock{{Hour: 10}}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateMiniLeagueFinals(t *testing.T) {
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	fixtures, err := GenerateMiniLeagueFinals(FinalsParams{
		GroupA: []int64{3, 1, 5, 2, 4},
		GroupB: []int64{8, 10, 6, 9, 7},
		Date:   date,
		Policy: ExplicitTimesPolicy{Times: []Clock{{Hour: 10}, {Hour: 12}, {Hour: 14}, {Hour: 16}, {Hour: 18}}},
	})
	if err != nil {
		t.Fatalf("generate finals: %v", err)
	}
	if len(fixtures) != 5 {
		t.Fatalf("expected 5 placement matches, got %d", len(fixtures))
	}

	final := fixtures[len(fixtures)-1]
	if final.HomeTeamID != 3 || final.AwayTeamID != 8 {
		t.Fatalf("expected final between group winners 3 and 8, got %d-%d", final.HomeTeamID, final.AwayTeamID)
	}
	if final.KickoffAt.Hour() != 18 {
		t.Fatalf("expected final in the last slot, got %s", final.KickoffAt)
	}
	if fixtures[0].HomeTeamID != 4 || fixtures[0].AwayTeamID != 7 {
		t.Fatalf("expected fifth-place match first, got %d-%d", fixtures[0].HomeTeamID, fixtures[0].AwayTeamID)
	}
	for _, f := range fixtures {
		if f.Stage != StageFinals || f.Round != FinalsRound {
			t.Fatalf("expected finals stage round %d, got %s round %d", FinalsRound, f.Stage, f.Round)
		}
	}
}

func TestGenerateMiniLeagueFinalsRequiresFullGroups(t *testing.T) {
	_, err := GenerateMiniLeagueFinals(FinalsParams{
		GroupA: []int64{1, 2, 3, 4},
		GroupB: []int64{6, 7, 8, 9, 10},
		Date:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Policy: ExplicitTimesPolicy{Times: []Clock{{Hour: 10}}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
