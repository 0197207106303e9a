package matches

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	fixturegen "github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/testutil"
)

func setupMatches(t *testing.T) (*db.DB, dbgen.Match) {
	t.Helper()
	database := testutil.NewTestDB(t)
	prevQueries, prevStore, prevLocation := queries, store, location
	t.Cleanup(func() {
		queries = prevQueries
		store = prevStore
		location = prevLocation
	})
	InitHandlers(database, nil)

	teams := testutil.CreateTeams(t, database, "Club", 2, 7)
	schedule, err := leagues.CreateSchedule(context.Background(), database, leagues.ScheduleInput{
		Mode:          fixturegen.ModeClassic,
		TeamIDs:       testutil.TeamIDs(teams),
		StartDate:     time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC),
		MatchesPerDay: 1,
		Policy:        fixturegen.IntervalPolicy{Start: fixturegen.Clock{Hour: 18}, IntervalMinutes: 120},
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	return database, schedule.Matches[0]
}

func serve(t *testing.T, handler http.HandlerFunc, method string, id int64, body, key string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/v1/matches/x", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	if id != 0 {
		req.SetPathValue("id", fmt.Sprint(id))
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSubmitResultUpdatesStandings(t *testing.T) {
	database, match := setupMatches(t)
	players, err := database.Queries.ListPlayersByTeam(context.Background(), match.HomeTeamID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}

	body := fmt.Sprintf(`{"homeScore":2,"awayScore":1,"events":[{"playerId":%d,"kind":"goal","minute":12},{"playerId":%d,"kind":"goal"}]}`, players[0].ID, players[1].ID)
	rec := serve(t, HandleSubmitMatchResult, http.MethodPost, match.ID, body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp resultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Match.Status != leagues.MatchCompleted || resp.Result.HomeScore != 2 || len(resp.Result.Events) != 2 {
		t.Fatalf("unexpected result %+v", resp)
	}
	if resp.Standings[0].TeamID != match.HomeTeamID || resp.Standings[0].Points != 3 || resp.Standings[1].Points != 0 {
		t.Fatalf("unexpected standings %+v", resp.Standings)
	}

	rec = serve(t, HandleMatchDetail, http.MethodGet, match.ID, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var detail matchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if detail.Result == nil || detail.Result.AwayScore != 1 || detail.Match.HomeTeam == "" {
		t.Fatalf("unexpected detail %+v", detail)
	}
}

func TestSubmitResultIdempotency(t *testing.T) {
	_, match := setupMatches(t)
	key := "2f1b7c1e-9a57-4e5c-8c1d-1a2b3c4d5e6f"
	body := `{"homeScore":0,"awayScore":0,"homePenalties":4,"awayPenalties":3}`

	if rec := serve(t, HandleSubmitMatchResult, http.MethodPost, match.ID, body, key); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec := serve(t, HandleSubmitMatchResult, http.MethodPost, match.ID, body, key)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp resultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Standings[0].Points != 2 || resp.Standings[1].Points != 1 {
		t.Fatalf("expected shootout split 2/1 after replay, got %+v", resp.Standings)
	}

	if rec := serve(t, HandleSubmitMatchResult, http.MethodPost, match.ID, body, ""); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a second submission without the key, got %d", rec.Code)
	}
}

func TestSubmitResultByBodyMatchID(t *testing.T) {
	_, match := setupMatches(t)

	body := fmt.Sprintf(`{"matchId":%d,"homeScore":1,"awayScore":1}`, match.ID)
	rec := serve(t, HandleSubmitResult, http.MethodPost, 0, body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitResultRejectsBadInput(t *testing.T) {
	database, match := setupMatches(t)
	outsiders := testutil.CreateTeams(t, database, "Outsider", 1, 1)
	stranger, err := database.Queries.ListPlayersByTeam(context.Background(), outsiders[0].ID)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}

	tests := []struct {
		name string
		id   int64
		body string
		want int
	}{
		{name: "missing score", id: match.ID, body: `{"homeScore":1}`, want: http.StatusBadRequest},
		{name: "negative score", id: match.ID, body: `{"homeScore":-1,"awayScore":0}`, want: http.StatusBadRequest},
		{name: "penalties without draw", id: match.ID, body: `{"homeScore":1,"awayScore":0,"homePenalties":5,"awayPenalties":4}`, want: http.StatusBadRequest},
		{name: "tied penalties", id: match.ID, body: `{"homeScore":1,"awayScore":1,"homePenalties":4,"awayPenalties":4}`, want: http.StatusBadRequest},
		{name: "unknown event kind", id: match.ID, body: `{"homeScore":0,"awayScore":0,"events":[{"playerId":1,"kind":"assist"}]}`, want: http.StatusBadRequest},
		{name: "player from another team", id: match.ID, body: fmt.Sprintf(`{"homeScore":1,"awayScore":0,"events":[{"playerId":%d,"kind":"goal"}]}`, stranger[0].ID), want: http.StatusBadRequest},
		{name: "unknown field", id: match.ID, body: `{"homeScore":1,"awayScore":0,"venue":"x"}`, want: http.StatusBadRequest},
		{name: "unknown match", id: 9999, body: `{"homeScore":1,"awayScore":0}`, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, HandleSubmitMatchResult, http.MethodPost, tt.id, tt.body, "")
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}

	if rec := serve(t, HandleSubmitMatchResult, http.MethodPost, match.ID, `{"homeScore":1,"awayScore":0}`, "abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed idempotency key, got %d", rec.Code)
	}
}

func TestStartMatch(t *testing.T) {
	_, match := setupMatches(t)

	rec := serve(t, HandleStartMatch, http.MethodPost, match.ID, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp matchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Match.Status != leagues.MatchInProgress {
		t.Fatalf("expected in_progress, got %s", resp.Match.Status)
	}

	if rec := serve(t, HandleStartMatch, http.MethodPost, match.ID, "", ""); rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second start, got %d", rec.Code)
	}
	if rec := serve(t, HandleSubmitMatchResult, http.MethodPost, match.ID, `{"homeScore":0,"awayScore":2}`, ""); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for an in-progress match, got %d: %s", rec.Code, rec.Body.String())
	}
}
