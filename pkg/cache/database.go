package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DatabaseStore implements Store on a SQL table of (key, value, expiration).
type DatabaseStore struct {
	db     *sql.DB
	table  string
	driver string // "sqlite", "pgsql"
}

// NewDatabaseStore creates a new database cache store
// driverName should be "sqlite" or "pgsql" (or "postgres")
func NewDatabaseStore(db *sql.DB, table string, driverName string) *DatabaseStore {
	if table == "" {
		table = "mailto_links"
	}
	return &DatabaseStore{db: db, table: table, driver: driverName}
}

func (s *DatabaseStore) postgres() bool {
	return s.driver == "postgres" || s.driver == "pgsql" || s.driver == "pgx"
}

// arg returns the n-th (1-based) bind placeholder for the driver.
func (s *DatabaseStore) arg(n int) string {
	if s.postgres() {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Migrate creates the cache table if it does not exist.
func (s *DatabaseStore) Migrate(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s ("key" VARCHAR(255) PRIMARY KEY, value TEXT NOT NULL, expiration BIGINT NOT NULL)`, s.table)
	_, err := s.db.ExecContext(ctx, query)
	return err
}

func (s *DatabaseStore) Get(ctx context.Context, key string) (string, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE "key" = %s AND expiration >= %s`, s.table, s.arg(1), s.arg(2))

	var value string
	err := s.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *DatabaseStore) Put(ctx context.Context, key string, value string, ttl time.Duration) error {
	expiration := time.Now().Add(ttl).Unix()

	// Delete then insert keeps the statements portable across drivers
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	delQuery := fmt.Sprintf(`DELETE FROM %s WHERE "key" = %s`, s.table, s.arg(1))
	if _, err := tx.ExecContext(ctx, delQuery, key); err != nil {
		return err
	}

	insQuery := fmt.Sprintf(`INSERT INTO %s ("key", value, expiration) VALUES (%s, %s, %s)`, s.table, s.arg(1), s.arg(2), s.arg(3))
	if _, err := tx.ExecContext(ctx, insQuery, key, value, expiration); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *DatabaseStore) Forget(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE "key" = %s`, s.table, s.arg(1))
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}
