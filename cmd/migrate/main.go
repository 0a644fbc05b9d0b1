package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/munchhq/munch-backend/internal/infrastructure/observability"
	"github.com/munchhq/munch-backend/pkg/config"
)

// Minimal SQL migration runner: applies db/migrations/*.sql alphabetically,
// once each, recording applied files in schema_migrations. Each file runs in
// its own transaction.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("munch-migrate", cfg.App.Environment)

	dir := "db/migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	db, err := sql.Open("postgres", cfg.Database.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database connection")
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			filename TEXT NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema_migrations table")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("failed to read migrations directory")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var applied bool
		err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE filename = $1)", name).Scan(&applied)
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to check migration state")
		}
		if applied {
			log.Info().Str("file", name).Msg("skipping migration, already applied")
			continue
		}

		script, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to read migration")
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to begin transaction")
		}
		if _, err := tx.Exec(string(script)); err != nil {
			tx.Rollback()
			log.Fatal().Err(err).Str("file", name).Msg("migration failed")
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (filename) VALUES ($1)", name); err != nil {
			tx.Rollback()
			log.Fatal().Err(err).Str("file", name).Msg("failed to record migration")
		}
		if err := tx.Commit(); err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to commit migration")
		}

		log.Info().Str("file", name).Msg("applied migration")
	}

	log.Info().Int("total", len(files)).Msg("migrations up to date")
}
