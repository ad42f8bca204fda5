// Package testutil provides an isolated, schema-ready store for tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	intconfig "busstation/internal/config"
	intdb "busstation/internal/db"
	"busstation/internal/repositories"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// It is closed when the test finishes.
func SetupTestDB(t *testing.T) (*sql.DB, intdb.Dialect) {
	t.Helper()

	conn, dialect, err := intconfig.OpenDB(context.Background(), intconfig.Env{
		DBDriver: "sqlite",
		DBDSN:    "file::memory:",
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := intdb.CreateSchema(context.Background(), conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn, dialect
}

// SetupTestRepo wraps SetupTestDB in a RecordRepository.
func SetupTestRepo(t *testing.T) repositories.RecordRepository {
	t.Helper()
	conn, dialect := SetupTestDB(t)
	return repositories.RecordRepository{DB: conn, Dialect: dialect}
}

// Form adapts a plain map to the getter the registry reads submitted values from.
func Form(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}
