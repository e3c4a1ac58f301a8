package cache

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseStore_Get_SQLite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDatabaseStore(db, "", "sqlite")

	query := regexp.QuoteMeta(`SELECT value FROM mailto_links WHERE "key" = ? AND expiration >= ?`)
	mock.ExpectQuery(query).
		WithArgs("link:abc", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"body":"","link":"mailto:a@x.com"}`))

	v, err := store.Get(context.Background(), "link:abc")
	require.NoError(t, err)
	assert.Equal(t, `{"body":"","link":"mailto:a@x.com"}`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseStore_Get_Miss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDatabaseStore(db, "links", "sqlite")

	mock.ExpectQuery("SELECT value FROM links").
		WillReturnError(sql.ErrNoRows)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseStore_Put_PgSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDatabaseStore(db, "mailto_links", "pgsql")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM mailto_links WHERE "key" = $1`)).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO mailto_links ("key", value, expiration) VALUES ($1, $2, $3)`)).
		WithArgs("k", "v", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = store.Put(context.Background(), "k", "v", time.Minute)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseStore_Put_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDatabaseStore(db, "mailto_links", "sqlite")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM mailto_links").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = store.Put(context.Background(), "k", "v", time.Minute)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabaseStore_ForgetAndMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewDatabaseStore(db, "mailto_links", "postgres")

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS mailto_links`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM mailto_links WHERE "key" = $1`)).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Forget(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
