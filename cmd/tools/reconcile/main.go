// cmd/tools/reconcile/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/leagues"
)

func main() {
	var (
		configPath    = flag.String("config", "config.yaml", "Path to config.yaml")
		competitionID = flag.Int64("competition", 0, "Competition ID (0 reconciles every active competition)")
		dryRun        = flag.Bool("dry-run", false, "Report drift without writing")
		timeout       = flag.Duration("timeout", 5*time.Minute, "Overall timeout")
	)
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx = log.Logger.WithContext(ctx)

	var results []leagues.Reconciliation
	if *competitionID > 0 {
		rec, err := leagues.ReconcileStandings(ctx, database, *competitionID, *dryRun)
		if err != nil {
			log.Fatal().Err(err).Int64("competition_id", *competitionID).Msg("Reconciliation failed")
		}
		results = append(results, rec)
	} else {
		results, err = leagues.ReconcileAll(ctx, database, *dryRun)
		if err != nil {
			log.Fatal().Err(err).Msg("Reconciliation failed")
		}
	}

	drifted := 0
	for _, rec := range results {
		for _, c := range rec.Corrections {
			fmt.Printf("competition %d team %d (%s): points %d -> %d, played %d -> %d\n",
				rec.CompetitionID, c.TeamID, c.After.TeamName,
				c.Before.Points, c.After.Points, c.Before.Played, c.After.Played)
		}
		if len(rec.Corrections) > 0 {
			drifted++
		}
	}
	verb := "repaired"
	if *dryRun {
		verb = "need repair"
	}
	fmt.Printf("%d of %d competitions %s\n", drifted, len(results), verb)
}
