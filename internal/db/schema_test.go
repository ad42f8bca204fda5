package db

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchemaExecutesInOrder(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	for _, name := range []string{"bus", "driver", "route", "schedule", "ticket"} {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + name + " (")).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, CreateSchema(context.Background(), conn, MySQL))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasTableMySQL(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("bus").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bus"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("ticket").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	ctx := context.Background()
	assert.True(t, HasTable(ctx, conn, MySQL, "bus"))
	assert.False(t, HasTable(ctx, conn, MySQL, "ticket"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchemaSQLiteIdempotent(t *testing.T) {
	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	defer conn.Close()

	ctx := context.Background()
	assert.Len(t, MissingTables(ctx, conn, SQLite), 5)

	require.NoError(t, CreateSchema(ctx, conn, SQLite))
	require.NoError(t, CreateSchema(ctx, conn, SQLite))

	assert.Empty(t, MissingTables(ctx, conn, SQLite))
}
