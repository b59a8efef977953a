// Package seed creates the schema and loads the Fuel and Currency reference
// catalogs. Reference rows are created out-of-band of the API; the catalogs
// are read-only at request time.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/benzak-dev/benzak-api/internal/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS currency (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS fuel (
		id         SERIAL PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		short_name TEXT NOT NULL UNIQUE,
		color      TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS price_history (
		id          SERIAL PRIMARY KEY,
		at          DATE NOT NULL,
		fuel_id     INTEGER NOT NULL REFERENCES fuel (id),
		currency_id INTEGER NOT NULL REFERENCES currency (id),
		price       NUMERIC(10, 2) NOT NULL,
		UNIQUE (at, fuel_id, currency_id)
	)`,
}

var currencies = []string{"BYN", "EUR", "RUB", "USD"}

var fuels = []struct {
	name, shortName, color string
}{
	{"АИ-92", "92", "#4caf50"},
	{"АИ-95", "95", "#f44336"},
	{"АИ-98", "98", "#9c27b0"},
	{"ДТ", "ДТ", "#607d8b"},
}

// Run creates the tables and inserts the reference catalogs in a single
// transaction. Re-running is harmless: existing rows are left untouched.
func Run(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	for _, name := range currencies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO currency (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed currency %s: %w", name, err)
		}
	}

	for _, f := range fuels {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO fuel (name, short_name, color) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
			f.name, f.shortName, f.color,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed fuel %s: %w", f.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	logger.L().Info().
		Int("currencies", len(currencies)).
		Int("fuels", len(fuels)).
		Msg("reference data seeded")
	return nil
}
