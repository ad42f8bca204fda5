// Package db holds the SQL engine specifics: dialects, schema creation and
// driver error classification. Drivers for sqlite, mysql and postgres are
// registered here.
package db

import (
	"fmt"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect describes the per-engine differences the store needs to know about.
type Dialect struct {
	Name        string
	DriverName  string
	IDColumn    string
	RefType     string
	DecimalType string
	TableSuffix string
	// Numbered placeholders ($1, $2, ...) instead of '?'.
	Numbered bool
	// Returning means inserts read the new id via RETURNING instead of LastInsertId.
	Returning     bool
	HasTableQuery string

	classify func(err error) errClass
}

var (
	SQLite = Dialect{
		Name:          "sqlite",
		DriverName:    "sqlite",
		IDColumn:      "INTEGER PRIMARY KEY AUTOINCREMENT",
		RefType:       "INTEGER",
		DecimalType:   "REAL",
		HasTableQuery: `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`,
		classify:      classifySQLite,
	}

	MySQL = Dialect{
		Name:        "mysql",
		DriverName:  "mysql",
		IDColumn:    "BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY",
		RefType:     "BIGINT",
		DecimalType: "DOUBLE",
		TableSuffix: " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
		HasTableQuery: `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1`,
		classify: classifyMySQL,
	}

	Postgres = Dialect{
		Name:        "postgres",
		DriverName:  "pgx",
		IDColumn:    "BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY",
		RefType:     "BIGINT",
		DecimalType: "DOUBLE PRECISION",
		Numbered:    true,
		Returning:   true,
		HasTableQuery: `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		  AND table_name = ?
		LIMIT 1`,
		classify: classifyPostgres,
	}
)

// DialectFor resolves a DB_DRIVER value.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind rewrites '?' placeholders for dialects that number them.
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
