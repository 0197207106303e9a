// internal/api/teams/handlers.go
package teams

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/contact"
	appdb "github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
)

const (
	teamQueryTimeout = 5 * time.Second
	teamIDPathKey    = "id"
	playerIDPathKey  = "player_id"
	maxTeamNameLen   = 80
)

var (
	queries       *dbgen.Queries
	defaultRegion = contact.DefaultRegion
)

type teamRequest struct {
	Name string `json:"name"`
}

type playerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type teamResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Active     bool   `json:"active"`
	RosterSize int64  `json:"rosterSize"`
}

type playerResponse struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"teamId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

// InitHandlers must be called during server startup before handling requests.
// region is the default region for phone numbers without a country code.
func InitHandlers(database *appdb.DB, region string) {
	if database == nil {
		return
	}
	queries = database.Queries
	if region != "" {
		defaultRegion = region
	}
}

// GET /api/v1/teams
func HandleListTeams(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	teams, err := q.ListTeams(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list teams")
		http.Error(w, "Failed to load teams", http.StatusInternalServerError)
		return
	}

	resp := make([]teamResponse, 0, len(teams))
	for _, team := range teams {
		size, err := q.CountActivePlayersByTeam(ctx, team.ID)
		if err != nil {
			logger.Error().Err(err).Int64("team_id", team.ID).Msg("Failed to count roster")
			http.Error(w, "Failed to load teams", http.StatusInternalServerError)
			return
		}
		resp = append(resp, newTeamResponse(team, size))
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"teams": resp}); err != nil {
		logger.Error().Err(err).Msg("Failed to write teams response")
	}
}

// POST /api/v1/teams
func HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req teamRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if len(name) > maxTeamNameLen {
		http.Error(w, "name is too long", http.StatusBadRequest)
		return
	}
	teamSlug := slug.Make(name)
	if teamSlug == "" {
		http.Error(w, "name must contain letters or digits", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := q.CreateTeam(ctx, dbgen.CreateTeamParams{Name: name, Slug: teamSlug})
	if err != nil {
		if apiutil.IsSQLiteUniqueViolation(err) {
			http.Error(w, "A team with this name already exists", http.StatusConflict)
			return
		}
		logger.Error().Err(err).Str("team_name", name).Msg("Failed to create team")
		http.Error(w, "Failed to create team", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("team_id", team.ID).Str("slug", team.Slug).Msg("Team registered")
	if err := apiutil.WriteJSON(w, http.StatusCreated, newTeamResponse(team, 0)); err != nil {
		logger.Error().Err(err).Int64("team_id", team.ID).Msg("Failed to write team response")
	}
}

// GET /api/v1/teams/{id}
func HandleTeamDetail(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, ok := fetchTeam(ctx, w, r, q, teamID)
	if !ok {
		return
	}
	size, err := q.CountActivePlayersByTeam(ctx, team.ID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", team.ID).Msg("Failed to count roster")
		http.Error(w, "Failed to load team", http.StatusInternalServerError)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, newTeamResponse(team, size)); err != nil {
		logger.Error().Err(err).Int64("team_id", team.ID).Msg("Failed to write team response")
	}
}

// POST /api/v1/teams/{id}/deactivate
func HandleDeactivateTeam(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, err := q.DeactivateTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to deactivate team")
		http.Error(w, "Failed to deactivate team", http.StatusInternalServerError)
		return
	}

	size, err := q.CountActivePlayersByTeam(ctx, team.ID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", team.ID).Msg("Failed to count roster")
		http.Error(w, "Failed to load team", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("team_id", team.ID).Msg("Team deactivated")
	if err := apiutil.WriteJSON(w, http.StatusOK, newTeamResponse(team, size)); err != nil {
		logger.Error().Err(err).Int64("team_id", team.ID).Msg("Failed to write team response")
	}
}

// GET /api/v1/teams/{id}/players
func HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	if _, ok := fetchTeam(ctx, w, r, q, teamID); !ok {
		return
	}
	players, err := q.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to list players")
		http.Error(w, "Failed to load players", http.StatusInternalServerError)
		return
	}

	resp := make([]playerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, newPlayerResponse(p))
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"players": resp}); err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to write players response")
	}
}

// POST /api/v1/teams/{id}/players
func HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	var req playerRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	params, err := parsePlayerRequest(teamID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	team, ok := fetchTeam(ctx, w, r, q, teamID)
	if !ok {
		return
	}
	if !team.Active {
		http.Error(w, "Team is inactive", http.StatusConflict)
		return
	}

	player, err := q.CreatePlayer(ctx, params)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to add player")
		http.Error(w, "Failed to add player", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("team_id", teamID).Int64("player_id", player.ID).Msg("Player added")
	if err := apiutil.WriteJSON(w, http.StatusCreated, newPlayerResponse(player)); err != nil {
		logger.Error().Err(err).Int64("player_id", player.ID).Msg("Failed to write player response")
	}
}

// DELETE /api/v1/teams/{id}/players/{player_id}
func HandleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	q := loadQueries()
	if q == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.PathID(r, teamIDPathKey)
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}
	playerID, err := apiutil.PathID(r, playerIDPathKey)
	if err != nil {
		http.Error(w, "Invalid player ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), teamQueryTimeout)
	defer cancel()

	if _, err := q.DeactivatePlayer(ctx, dbgen.DeactivatePlayerParams{ID: playerID, TeamID: teamID}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("player_id", playerID).Msg("Failed to remove player")
		http.Error(w, "Failed to remove player", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("team_id", teamID).Int64("player_id", playerID).Msg("Player removed")
	w.WriteHeader(http.StatusNoContent)
}

func parsePlayerRequest(teamID int64, req playerRequest) (dbgen.CreatePlayerParams, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return dbgen.CreatePlayerParams{}, errors.New("firstName and lastName are required")
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = "player"
	}
	if role != "player" && role != "coach" {
		return dbgen.CreatePlayerParams{}, errors.New("role must be player or coach")
	}

	email, err := contact.NormalizeEmail(req.Email)
	if err != nil {
		return dbgen.CreatePlayerParams{}, err
	}
	phone, err := contact.NormalizePhone(req.Phone, defaultRegion)
	if err != nil {
		return dbgen.CreatePlayerParams{}, err
	}

	return dbgen.CreatePlayerParams{
		TeamID:    teamID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     apiutil.ToNullString(email),
		Phone:     apiutil.ToNullString(phone),
		Role:      role,
	}, nil
}

func fetchTeam(ctx context.Context, w http.ResponseWriter, r *http.Request, q *dbgen.Queries, teamID int64) (dbgen.Team, bool) {
	team, err := q.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return dbgen.Team{}, false
		}
		log.Ctx(r.Context()).Error().Err(err).Int64("team_id", teamID).Msg("Failed to fetch team")
		http.Error(w, "Failed to load team", http.StatusInternalServerError)
		return dbgen.Team{}, false
	}
	return team, true
}

func newTeamResponse(team dbgen.Team, rosterSize int64) teamResponse {
	return teamResponse{
		ID:         team.ID,
		Name:       team.Name,
		Slug:       team.Slug,
		Active:     team.Active,
		RosterSize: rosterSize,
	}
}

func newPlayerResponse(p dbgen.Player) playerResponse {
	return playerResponse{
		ID:        p.ID,
		TeamID:    p.TeamID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email.String,
		Phone:     p.Phone.String,
		Role:      p.Role,
		Active:    p.Active,
	}
}

func loadQueries() *dbgen.Queries {
	return queries
}
