// Package db opens the SQL backends and applies schema migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/drawerfinder/internal/db/migrations"
	"github.com/dmitrijs2005/drawerfinder/internal/dbx"
)

// driverName maps a dialect to the registered database/sql driver.
func driverName(d dbx.Dialect) (string, error) {
	switch d {
	case dbx.DialectSQLite:
		return "sqlite", nil
	case dbx.DialectPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", d)
	}
}

// gooseDialect maps a dialect to the name goose expects.
func gooseDialect(d dbx.Dialect) string {
	if d == dbx.DialectSQLite {
		return "sqlite3"
	}
	return string(d)
}

// RunMigrations applies every pending migration for dialect d.
func RunMigrations(ctx context.Context, db *sql.DB, d dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect(d)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, string(d)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Open connects to dsn with the driver for d and migrates the schema.
func Open(ctx context.Context, d dbx.Dialect, dsn string) (*sql.DB, error) {
	driver, err := driverName(d)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}

	if d == dbx.DialectSQLite {
		// a single connection keeps writers serialized and avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}

	if err := RunMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
