package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"campaignd/internal/infra"
)

func main() {
	action := flag.String("action", "up", "Migration action: up, down, or version")
	steps := flag.Int("steps", 0, "Number of migrations to roll back (for down)")
	path := flag.String("path", "migrations", "Directory holding the migration files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Fail fast on an unreachable database before handing off to migrate.
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}
	_ = db.Close()

	m, err := migrate.New(fmt.Sprintf("file://%s", *path), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("create migrate instance")
	}
	defer m.Close()

	switch *action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Fatal().Err(err).Msg("migration up failed")
		}
		logger.Info().Msg("migrations applied")

	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.Fatal().Err(err).Msg("migration down failed")
		}
		logger.Info().Msg("migrations rolled back")

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			logger.Fatal().Err(err).Msg("read migration version")
		}
		logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("migration state")

	default:
		logger.Fatal().Str("action", *action).Msg("unknown action (use up, down, or version)")
	}
}
