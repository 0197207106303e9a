// cmd/dbtools/migrate/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/db"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config.yaml, used when -db is not set")
		dbPath     = flag.String("db", "", "Path to SQLite database")
		command    = flag.String("command", "", "Command to run (up, down, version)")
	)
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *command == "" {
		flag.Usage()
		os.Exit(1)
	}

	path := *dbPath
	if path == "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		path = cfg.Database.Filename
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create database directory")
	}

	status, err := db.Migrate(path, *command)
	if err != nil {
		log.Fatal().Err(err).Str("db", path).Str("command", *command).Msg("Migration failed")
	}
	fmt.Printf("Version: %d, Dirty: %v\n", status.Version, status.Dirty)
}
