package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// New opens and pings a database for driver.
func New(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	switch driver {
	case DriverSQLite:
		// One writer at a time on the file.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return db, nil
}

// EnsureSchema creates any missing tables and indexes. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	name, err := schemaFile(driver)
	if err != nil {
		return err
	}

	ddl, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}

func schemaFile(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "schema/postgres.sql", nil
	case DriverSQLite:
		return "schema/sqlite.sql", nil
	default:
		return "", fmt.Errorf("no schema for driver %q", driver)
	}
}
