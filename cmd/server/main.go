// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/Matchday/internal/api/auth"
	"github.com/codr1/Matchday/internal/api/competitions"
	"github.com/codr1/Matchday/internal/api/fixtures"
	"github.com/codr1/Matchday/internal/api/matches"
	"github.com/codr1/Matchday/internal/api/teams"
	"github.com/codr1/Matchday/internal/config"
	appdb "github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/email"
	"github.com/codr1/Matchday/internal/ratelimit"
	"github.com/codr1/Matchday/internal/scheduler"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", getEnv("CONFIG_PATH", "config.yaml"), "Path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configPath).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := appdb.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	teams.InitHandlers(database, cfg.App.PhoneRegion)
	fixtures.InitHandlers(database, cfg)
	competitions.InitHandlers(database, cfg)
	matches.InitHandlers(database, cfg)
	auth.InitClerk(cfg.Auth.ClerkSecretKey)

	var sender email.EmailSender
	if cfg.EmailEnabled() {
		client, err := email.NewSESClient(cfg.Email.AccessKeyID, cfg.Email.SecretAccessKey, cfg.Email.Region, cfg.Email.Sender)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize SES client")
		}
		sender = client
	} else {
		log.Warn().Msg("Email not configured; notifications stay queued")
	}

	limiter := ratelimit.New(&ratelimit.Config{
		RequestsPerMinute: cfg.HTTP.WriteRequestsPerMinute,
		TrustProxy:        cfg.HTTP.TrustProxy,
	})
	defer limiter.Close()

	jobs, err := scheduler.New(0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	if err := scheduler.RegisterJobs(jobs, database, sender, cfg.Jobs); err != nil {
		log.Fatal().Err(err).Msg("Failed to register scheduler jobs")
	}

	server := newServer(cfg, limiter)
	shutdownTimeout := time.Duration(cfg.HTTP.ShutdownTimeoutSeconds) * time.Second

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Str("environment", cfg.App.Environment).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return jobs.Start()
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := jobs.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
