// Package database provides the shared PostgreSQL connection pool.
// All repositories receive a *Database and run queries either directly
// via DB() or transactionally via WithTx.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ghuser/forgemart/pkg/logger"
)

// Database wraps *sql.DB with pool configuration and transaction helpers.
type Database struct {
	db  *sql.DB
	log logger.Logger
}

// NewPool opens a pgx-backed connection pool against dbURL and verifies
// connectivity with a ping.
func NewPool(ctx context.Context, dbURL string, log logger.Logger) (*Database, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{db: db, log: log}, nil
}

// DB returns the underlying *sql.DB for direct queries.
func (d *Database) DB() *sql.DB {
	return d.db
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise (or on panic).
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.Error("tx rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping checks database connectivity. Satisfies httpx.HealthChecker.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() {
	if err := d.db.Close(); err != nil {
		d.log.Error("database close failed", "error", err)
	}
}
