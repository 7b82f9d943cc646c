package store

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresMock(t *testing.T) (*PostgresStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresStoreWithDB(sqlx.NewDb(db, "sqlmock")), mock, func() { db.Close() }
}

func TestPostgresStoreRead(t *testing.T) {
	s, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_collections WHERE key = $1")).
		WithArgs("students").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":1}]`)))

	value, err := s.Read(context.Background(), "students")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreReadAbsentKey(t *testing.T) {
	s, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_collections WHERE key = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.Read(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreWriteUpserts(t *testing.T) {
	s, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO kv_collections").
		WithArgs("courses", []byte("[]")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Write(context.Background(), "courses", []byte("[]")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreDelete(t *testing.T) {
	s, mock, cleanup := newPostgresMock(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM kv_collections").
		WithArgs("departments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "departments"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
