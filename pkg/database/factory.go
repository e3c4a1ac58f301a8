package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pixelvide/mailto-go/pkg/config"
	_ "modernc.org/sqlite"
)

// Factory creates database connections
type Factory struct {
	open func(driverName, dsn string) (*sql.DB, error)
}

// NewFactory creates a new Factory
func NewFactory() *Factory {
	return &Factory{open: sql.Open}
}

// DriverName returns the database/sql driver and DSN for a connection config.
func DriverName(cfg config.DatabaseConfig) (driverName string, dsn string, err error) {
	switch cfg.Connection {
	case "sqlite", "":
		return "sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.Database), nil
	case "pgsql", "postgres":
		return "pgx", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database), nil
	default:
		return "", "", fmt.Errorf("unsupported database connection: %s", cfg.Connection)
	}
}

// Connect creates a new database connection based on configuration
func (f *Factory) Connect(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	driverName, dsn, err := DriverName(cfg)
	if err != nil {
		return nil, err
	}

	db, err := f.open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if driverName == "sqlite" {
		// One writer at a time
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	// Verify connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
