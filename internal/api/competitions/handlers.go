// internal/api/competitions/handlers.go
package competitions

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api"
	"github.com/codr1/Matchday/internal/api/apiutil"
	apifixtures "github.com/codr1/Matchday/internal/api/fixtures"
	"github.com/codr1/Matchday/internal/config"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/standings"
)

const (
	competitionQueryTimeout = 5 * time.Second
	competitionIDPathKey    = "id"
)

var (
	queries  *dbgen.Queries
	store    *appdb.DB
	settings = apifixtures.Settings{Location: time.UTC}
)

type standingsResponse struct {
	Competition api.CompetitionView           `json:"competition"`
	Standings   []api.StandingView            `json:"standings"`
	Groups      map[string][]api.StandingView `json:"groups,omitempty"`
}

type correctionView struct {
	TeamID int64            `json:"teamId"`
	Before api.StandingView `json:"before"`
	After  api.StandingView `json:"after"`
}

type reconcileResponse struct {
	CompetitionID int64              `json:"competitionId"`
	DryRun        bool               `json:"dryRun"`
	Corrections   []correctionView   `json:"corrections"`
	Standings     []api.StandingView `json:"standings"`
}

type finalsRequest struct {
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	TimePolicy      string   `json:"timePolicy"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Times           []string `json:"times"`
}

type finalsResponse struct {
	api.ScheduleResponse
	Groups map[string][]api.StandingView `json:"groups"`
}

type playerStatView struct {
	PlayerID      int64  `json:"playerId"`
	TeamID        int64  `json:"teamId"`
	Name          string `json:"name"`
	Goals         int    `json:"goals"`
	YellowCards   int    `json:"yellowCards"`
	RedCards      int    `json:"redCards"`
	FantasyPoints int    `json:"fantasyPoints"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, cfg *config.Config) {
	if database == nil {
		return
	}
	queries = database.Queries
	store = database
	if cfg != nil {
		settings = apifixtures.SettingsFromConfig(cfg)
	}
}

// GET /api/v1/competitions
func HandleListCompetitions(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	competitions, err := q.ListCompetitions(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list competitions")
		http.Error(w, "Failed to load competitions", http.StatusInternalServerError)
		return
	}

	includeArchived := r.URL.Query().Get("archived") == "true"
	views := make([]api.CompetitionView, 0, len(competitions))
	for _, c := range competitions {
		if c.Archived && !includeArchived {
			continue
		}
		views = append(views, api.NewCompetitionView(c))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"competitions": views}); err != nil {
		logger.Error().Err(err).Msg("Failed to write competitions response")
	}
}

// GET /api/v1/competitions/{id}
func HandleCompetitionDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	schedule, err := leagues.Fixtures(ctx, q, competitionID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to load competition")
		return
	}

	completed := 0
	for _, m := range schedule.Matches {
		if m.Status == leagues.MatchCompleted {
			completed++
		}
	}
	resp := map[string]any{
		"competition":      api.NewCompetitionView(schedule.Competition),
		"matchCount":       len(schedule.Matches),
		"completedMatches": completed,
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write competition response")
	}
}

// GET /api/v1/competitions/{id}/fixtures
func HandleCompetitionFixtures(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	schedule, err := leagues.Fixtures(ctx, q, competitionID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to load fixtures")
		return
	}

	if stage := r.URL.Query().Get("stage"); stage != "" {
		filtered := schedule.Matches[:0]
		for _, m := range schedule.Matches {
			if m.Stage == stage {
				filtered = append(filtered, m)
			}
		}
		schedule.Matches = filtered
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, api.NewScheduleResponse(schedule, settings.Location)); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write fixtures response")
	}
}

// GET /api/v1/competitions/{id}/standings
func HandleCompetitionStandings(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	table, err := leagues.CompetitionTable(ctx, q, competitionID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to load standings")
		return
	}

	resp := standingsResponse{
		Competition: api.NewCompetitionView(table.Competition),
		Standings:   api.NewStandingViews(table.Rows),
		Groups:      groupViews(table.Groups),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write standings response")
	}
}

// POST /api/v1/competitions/{id}/standings/reconcile
func HandleReconcileStandings(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	database := loadDB()
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}
	dryRun := false
	if raw := r.URL.Query().Get("dryRun"); raw != "" {
		dryRun, err = strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "dryRun must be true or false", http.StatusBadRequest)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	rec, err := leagues.ReconcileStandings(ctx, database, competitionID, dryRun)
	if err != nil {
		api.WriteError(w, r, err, "Failed to reconcile standings")
		return
	}

	resp := reconcileResponse{
		CompetitionID: rec.CompetitionID,
		DryRun:        rec.DryRun,
		Corrections:   make([]correctionView, 0, len(rec.Corrections)),
		Standings:     api.NewStandingViews(rec.Rows),
	}
	for _, c := range rec.Corrections {
		resp.Corrections = append(resp.Corrections, correctionView{
			TeamID: c.TeamID,
			Before: api.NewStandingView(c.Before),
			After:  api.NewStandingView(c.After),
		})
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write reconcile response")
	}
}

// POST /api/v1/competitions/{id}/finals
func HandleGenerateFinals(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	database := loadDB()
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	var req finalsRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	policy, err := apifixtures.ParsePolicy(req.TimePolicy, req.Time, req.IntervalMinutes, req.Times, settings.DefaultIntervalMinutes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input := leagues.FinalsInput{
		CompetitionID:    competitionID,
		Policy:           policy,
		RoundCadenceDays: settings.RoundCadenceDays,
		Location:         settings.Location,
	}
	if req.Date != "" {
		input.Date, err = apiutil.ParseDate(req.Date, "date", settings.Location)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	finals, err := leagues.GenerateFinals(ctx, database, input)
	if err != nil {
		api.WriteError(w, r, err, "Failed to generate finals")
		return
	}

	resp := finalsResponse{
		ScheduleResponse: api.NewScheduleResponse(finals.Schedule, settings.Location),
		Groups:           groupViews(finals.Groups),
	}
	if err := apiutil.WriteJSON(w, http.StatusCreated, resp); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write finals response")
	}
}

// POST /api/v1/competitions/{id}/archive
func HandleArchiveCompetition(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	database := loadDB()
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	competition, matches, err := leagues.ArchiveCompetition(ctx, database, competitionID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to archive competition")
		return
	}

	resp := map[string]any{
		"competition":     api.NewCompetitionView(competition),
		"archivedMatches": matches,
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write archive response")
	}
}

// GET /api/v1/competitions/{id}/players/stats
func HandlePlayerStats(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	competitionID, err := apiutil.PathID(r, competitionIDPathKey)
	if err != nil {
		http.Error(w, "Invalid competition ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), competitionQueryTimeout)
	defer cancel()

	stats, err := leagues.PlayerStats(ctx, q, competitionID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to load player stats")
		return
	}

	views := make([]playerStatView, 0, len(stats))
	for _, s := range stats {
		views = append(views, playerStatView(s))
	}
	resp := map[string]any{"competitionId": competitionID, "players": views}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Int64("competition_id", competitionID).Msg("Failed to write player stats response")
	}
}

func groupViews(groups map[string][]standings.Row) map[string][]api.StandingView {
	if len(groups) == 0 {
		return nil
	}
	views := make(map[string][]api.StandingView, len(groups))
	for label, rows := range groups {
		views[label] = api.NewStandingViews(rows)
	}
	return views
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDB() *appdb.DB {
	return store
}
