// internal/api/matches/handlers.go
package matches

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api"
	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/config"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
)

const (
	matchQueryTimeout = 5 * time.Second
	matchIDPathKey    = "id"
)

var (
	queries  *dbgen.Queries
	store    *appdb.DB
	location = time.UTC
)

type eventRequest struct {
	PlayerID int64  `json:"playerId"`
	Kind     string `json:"kind"`
	Minute   *int   `json:"minute"`
}

type resultRequest struct {
	MatchID       int64          `json:"matchId"`
	HomeScore     *int           `json:"homeScore"`
	AwayScore     *int           `json:"awayScore"`
	HomePenalties *int           `json:"homePenalties"`
	AwayPenalties *int           `json:"awayPenalties"`
	Events        []eventRequest `json:"events"`
}

type matchResponse struct {
	Match  api.MatchView   `json:"match"`
	Result *api.ResultView `json:"result,omitempty"`
}

type resultResponse struct {
	Match     api.MatchView      `json:"match"`
	Result    api.ResultView     `json:"result"`
	Standings []api.StandingView `json:"standings"`
	Phase     string             `json:"phase"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, cfg *config.Config) {
	if database == nil {
		return
	}
	queries = database.Queries
	store = database
	if cfg != nil {
		location = cfg.Location()
	}
}

// GET /api/v1/matches/{id}
func HandleMatchDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	detail, err := leagues.GetMatchDetail(ctx, q, matchID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to load match")
		return
	}

	resp := matchResponse{Match: api.NewMatchView(detail.Match, detail.TeamNames, location)}
	if detail.Result != nil {
		view := api.NewResultView(*detail.Result, detail.Events)
		resp.Result = &view
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to write match response")
	}
}

// POST /api/v1/matches/{id}/start
func HandleStartMatch(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	database := loadDB()
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	if _, err := leagues.StartMatch(ctx, database, matchID); err != nil {
		api.WriteError(w, r, err, "Failed to start match")
		return
	}
	detail, err := leagues.GetMatchDetail(ctx, database.Queries, matchID)
	if err != nil {
		api.WriteError(w, r, err, "Failed to load match")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, matchResponse{Match: api.NewMatchView(detail.Match, detail.TeamNames, location)}); err != nil {
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to write match response")
	}
}

// POST /api/v1/matches/{id}/result
func HandleSubmitMatchResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := apiutil.PathID(r, matchIDPathKey)
	if err != nil {
		http.Error(w, "Invalid match ID", http.StatusBadRequest)
		return
	}
	submitResult(w, r, matchID)
}

// POST /api/v1/results
func HandleSubmitResult(w http.ResponseWriter, r *http.Request) {
	submitResult(w, r, 0)
}

// submitResult records a result for matchID, or for the matchId in the body
// when matchID is zero.
func submitResult(w http.ResponseWriter, r *http.Request, matchID int64) {
	logger := log.Ctx(r.Context())

	database := loadDB()
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req resultRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key, err := apiutil.IdempotencyKey(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input, err := parseResultRequest(req, matchID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input.IdempotencyKey = key
	input.Location = location

	ctx, cancel := context.WithTimeout(r.Context(), matchQueryTimeout)
	defer cancel()

	outcome, err := leagues.RecordResult(ctx, database, input)
	if err != nil {
		api.WriteError(w, r, err, "Failed to record result")
		return
	}

	names := map[int64]string{
		outcome.Home.TeamID: outcome.Home.TeamName,
		outcome.Away.TeamID: outcome.Away.TeamName,
	}
	resp := resultResponse{
		Match:  api.NewMatchView(outcome.Match, names, location),
		Result: api.NewResultView(outcome.Result, outcome.Events),
		Standings: []api.StandingView{
			api.NewStandingView(outcome.Home),
			api.NewStandingView(outcome.Away),
		},
		Phase: outcome.Phase,
	}

	status := http.StatusCreated
	if outcome.Replayed {
		status = http.StatusOK
		logger.Info().Int64("match_id", input.MatchID).Msg("Result submission replayed")
	}
	if err := apiutil.WriteJSON(w, status, resp); err != nil {
		logger.Error().Err(err).Int64("match_id", input.MatchID).Msg("Failed to write result response")
	}
}

func parseResultRequest(req resultRequest, matchID int64) (leagues.ResultInput, error) {
	if matchID == 0 {
		matchID = req.MatchID
	}
	if matchID <= 0 {
		return leagues.ResultInput{}, apiutil.FieldError{Field: "matchId", Reason: "is required"}
	}
	if req.HomeScore == nil {
		return leagues.ResultInput{}, apiutil.FieldError{Field: "homeScore", Reason: "is required"}
	}
	if req.AwayScore == nil {
		return leagues.ResultInput{}, apiutil.FieldError{Field: "awayScore", Reason: "is required"}
	}

	input := leagues.ResultInput{
		MatchID:       matchID,
		HomeScore:     *req.HomeScore,
		AwayScore:     *req.AwayScore,
		HomePenalties: req.HomePenalties,
		AwayPenalties: req.AwayPenalties,
		Events:        make([]leagues.EventInput, 0, len(req.Events)),
	}
	for _, e := range req.Events {
		input.Events = append(input.Events, leagues.EventInput{PlayerID: e.PlayerID, Kind: e.Kind, Minute: e.Minute})
	}
	return input, nil
}

func loadQueries() *dbgen.Queries {
	return queries
}

func loadDB() *appdb.DB {
	return store
}
