package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	cases := map[string]string{
		"":           "sqlite",
		"SQLite":     "sqlite",
		"mysql":      "mysql",
		"mariadb":    "mysql",
		"postgres":   "postgres",
		" pgx ":      "postgres",
		"postgresql": "postgres",
	}
	for in, want := range cases {
		d, err := DialectFor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d.Name, in)
	}

	_, err := DialectFor("oracle")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := "UPDATE bus SET route_number = ?, destination = ? WHERE id = ?"
	assert.Equal(t, q, MySQL.Rebind(q))
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, "UPDATE bus SET route_number = $1, destination = $2 WHERE id = $3", Postgres.Rebind(q))
}

func TestSchemaStatements(t *testing.T) {
	stmts := SchemaStatements(MySQL)
	require.Len(t, stmts, 5)

	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS bus")
	assert.Contains(t, stmts[0], "route_number VARCHAR(50) NOT NULL")
	assert.True(t, strings.HasSuffix(stmts[0], "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"))

	assert.Contains(t, stmts[2], "distance_km DOUBLE NOT NULL")

	schedule := stmts[3]
	assert.Contains(t, schedule, "bus_id BIGINT NOT NULL")
	assert.Contains(t, schedule, "FOREIGN KEY (bus_id) REFERENCES bus(id)")
	assert.Contains(t, schedule, "FOREIGN KEY (route_id) REFERENCES route(id)")

	assert.Contains(t, stmts[4], "FOREIGN KEY (schedule_id) REFERENCES schedule(id)")
	assert.Contains(t, stmts[4], "seat_number VARCHAR(10) NOT NULL")
}

func TestSchemaStatementsSQLite(t *testing.T) {
	stmts := SchemaStatements(SQLite)
	assert.Contains(t, stmts[0], "id INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.Contains(t, stmts[4], "price REAL NOT NULL")
	assert.NotContains(t, stmts[0], "ENGINE")
}
