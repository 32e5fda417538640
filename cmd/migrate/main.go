// Command migrate applies or rolls back the schema migrations outside the server.
//
// Usage:
//
//	migrate up            apply all pending migrations
//	migrate down          roll back the most recent migration
//	migrate goto VERSION  migrate up or down to VERSION
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/pkg/logger"
)

var errUsage = errors.New("usage: migrate up | down | goto VERSION")

type command struct {
	action  string
	version uint
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format).With().Str("command", "migrate").Logger()

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	path := cfg.Database.MigrationsPath

	switch cmd.action {
	case "up":
		err = db.RunMigrations(path)
	case "down":
		err = db.MigrateDown(path)
	case "goto":
		err = db.MigrateToVersion(path, cmd.version)
	}
	if err != nil {
		log.Error().Err(err).Str("action", cmd.action).Msg("Migration failed")
		return err
	}
	return nil
}

// parseArgs validates the command line before any connection is opened
func parseArgs(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	switch args[0] {
	case "up", "down":
		if len(args) != 1 {
			return command{}, errUsage
		}
		return command{action: args[0]}, nil
	case "goto":
		if len(args) != 2 {
			return command{}, errUsage
		}
		version, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return command{}, fmt.Errorf("invalid migration version %q: %w", args[1], errUsage)
		}
		return command{action: "goto", version: uint(version)}, nil
	}
	return command{}, errUsage
}
