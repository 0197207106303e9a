package teams

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/codr1/Matchday/internal/testutil"
)

func newTeamsMux(t *testing.T) *http.ServeMux {
	t.Helper()
	database := testutil.NewTestDB(t)
	prev := queries
	t.Cleanup(func() { queries = prev })
	InitHandlers(database, "US")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/teams", HandleListTeams)
	mux.HandleFunc("POST /api/v1/teams", HandleCreateTeam)
	mux.HandleFunc("GET /api/v1/teams/{id}", HandleTeamDetail)
	mux.HandleFunc("POST /api/v1/teams/{id}/deactivate", HandleDeactivateTeam)
	mux.HandleFunc("GET /api/v1/teams/{id}/players", HandleListPlayers)
	mux.HandleFunc("POST /api/v1/teams/{id}/players", HandleAddPlayer)
	mux.HandleFunc("DELETE /api/v1/teams/{id}/players/{player_id}", HandleRemovePlayer)
	return mux
}

func do(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestCreateTeamAndRoster(t *testing.T) {
	mux := newTeamsMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/teams", `{"name":"Harbour Rovers FC"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var team teamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	if team.Slug != "harbour-rovers-fc" || !team.Active {
		t.Fatalf("unexpected team %+v", team)
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/teams", `{"name":"harbour rovers fc"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate slug, got %d", rec.Code)
	}

	path := "/api/v1/teams/" + itoa(team.ID) + "/players"
	rec = do(t, mux, http.MethodPost, path, `{"firstName":"Ada","lastName":"Stone","email":"Ada@Example.com","phone":"(650) 253-0000"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for player, got %d: %s", rec.Code, rec.Body.String())
	}
	var player playerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &player); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if player.Email != "ada@example.com" || player.Phone != "+16502530000" || player.Role != "player" {
		t.Fatalf("expected normalised contact details, got %+v", player)
	}

	rec = do(t, mux, http.MethodGet, "/api/v1/teams/"+itoa(team.ID), "")
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team detail: %v", err)
	}
	if team.RosterSize != 1 {
		t.Fatalf("expected roster size 1, got %d", team.RosterSize)
	}

	rec = do(t, mux, http.MethodDelete, path+"/"+itoa(player.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on removal, got %d", rec.Code)
	}
	rec = do(t, mux, http.MethodGet, "/api/v1/teams/"+itoa(team.ID), "")
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team detail: %v", err)
	}
	if team.RosterSize != 0 {
		t.Fatalf("removed players must not count toward the roster, got %d", team.RosterSize)
	}
}

func TestAddPlayerValidation(t *testing.T) {
	mux := newTeamsMux(t)
	rec := do(t, mux, http.MethodPost, "/api/v1/teams", `{"name":"Valley Town"}`)
	var team teamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	path := "/api/v1/teams/" + itoa(team.ID) + "/players"

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "missing last name", body: `{"firstName":"Ada"}`, want: http.StatusBadRequest},
		{name: "bad email", body: `{"firstName":"Ada","lastName":"Stone","email":"Ada <ada@example.com>"}`, want: http.StatusBadRequest},
		{name: "bad phone", body: `{"firstName":"Ada","lastName":"Stone","phone":"12"}`, want: http.StatusBadRequest},
		{name: "bad role", body: `{"firstName":"Ada","lastName":"Stone","role":"referee"}`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"firstName":"Ada","lastName":"Stone","shirt":9}`, want: http.StatusBadRequest},
		{name: "coach", body: `{"firstName":"Sam","lastName":"Reed","role":"Coach"}`, want: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, path, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}

	if rec := do(t, mux, http.MethodPost, "/api/v1/teams/9999/players", `{"firstName":"Ada","lastName":"Stone"}`); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown team, got %d", rec.Code)
	}
}

func TestDeactivateTeamBlocksNewPlayers(t *testing.T) {
	mux := newTeamsMux(t)
	rec := do(t, mux, http.MethodPost, "/api/v1/teams", `{"name":"Old Boys"}`)
	var team teamResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/teams/"+itoa(team.ID)+"/deactivate", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	if team.Active {
		t.Fatalf("expected inactive team")
	}

	rec = do(t, mux, http.MethodPost, "/api/v1/teams/"+itoa(team.ID)+"/players", `{"firstName":"Ada","lastName":"Stone"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for inactive team, got %d", rec.Code)
	}

	rec = do(t, mux, http.MethodGet, "/api/v1/teams", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"active":false`) {
		t.Fatalf("expected inactive team in list, got %d: %s", rec.Code, rec.Body.String())
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
