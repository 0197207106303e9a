// cmd/server/server.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/codr1/Matchday/internal/api"
	"github.com/codr1/Matchday/internal/api/auth"
	"github.com/codr1/Matchday/internal/api/competitions"
	"github.com/codr1/Matchday/internal/api/fixtures"
	"github.com/codr1/Matchday/internal/api/matches"
	"github.com/codr1/Matchday/internal/api/teams"
	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/ratelimit"
)

func newServer(cfg *config.Config, limiter *ratelimit.Limiter) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithCORS(cfg.HTTP.AllowedOrigins),
		auth.WithClerkSession,
		api.WithContentType,
	)

	registerRoutes(router, limiter)

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, limiter *ratelimit.Limiter) {
	// Writes need a session and count against the client's rate limit.
	write := func(h http.HandlerFunc) http.Handler {
		return limiter.Middleware(auth.RequireSession(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Team routes
	mux.HandleFunc("GET /api/v1/teams", teams.HandleListTeams)
	mux.Handle("POST /api/v1/teams", write(teams.HandleCreateTeam))
	mux.HandleFunc("GET /api/v1/teams/{id}", teams.HandleTeamDetail)
	mux.Handle("POST /api/v1/teams/{id}/deactivate", write(teams.HandleDeactivateTeam))
	mux.HandleFunc("GET /api/v1/teams/{id}/players", teams.HandleListPlayers)
	mux.Handle("POST /api/v1/teams/{id}/players", write(teams.HandleAddPlayer))
	mux.Handle("DELETE /api/v1/teams/{id}/players/{player_id}", write(teams.HandleRemovePlayer))

	// Fixture generation
	mux.Handle("POST /api/v1/fixtures/generate", write(fixtures.HandleGenerateFixtures))

	// Competition routes
	mux.HandleFunc("GET /api/v1/competitions", competitions.HandleListCompetitions)
	mux.HandleFunc("GET /api/v1/competitions/{id}", competitions.HandleCompetitionDetail)
	mux.HandleFunc("GET /api/v1/competitions/{id}/fixtures", competitions.HandleCompetitionFixtures)
	mux.HandleFunc("GET /api/v1/competitions/{id}/standings", competitions.HandleCompetitionStandings)
	mux.Handle("POST /api/v1/competitions/{id}/standings/reconcile", write(competitions.HandleReconcileStandings))
	mux.Handle("POST /api/v1/competitions/{id}/finals", write(competitions.HandleGenerateFinals))
	mux.Handle("POST /api/v1/competitions/{id}/archive", write(competitions.HandleArchiveCompetition))
	mux.HandleFunc("GET /api/v1/competitions/{id}/players/stats", competitions.HandlePlayerStats)

	// Match routes
	mux.HandleFunc("GET /api/v1/matches/{id}", matches.HandleMatchDetail)
	mux.Handle("POST /api/v1/matches/{id}/start", write(matches.HandleStartMatch))
	mux.Handle("POST /api/v1/matches/{id}/result", write(matches.HandleSubmitMatchResult))
	mux.Handle("POST /api/v1/results", write(matches.HandleSubmitResult))
}
