package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intdb "busstation/internal/db"
)

// OpenDB opens and pings the store selected by env. The caller owns the handle.
func OpenDB(ctx context.Context, env Env) (*sql.DB, intdb.Dialect, error) {
	dialect, err := intdb.DialectFor(env.DBDriver)
	if err != nil {
		return nil, intdb.Dialect{}, err
	}

	dsn := strings.TrimSpace(env.DBDSN)
	if dsn == "" {
		return nil, dialect, errors.New("DB_DSN is required for " + dialect.Name)
	}
	if dialect.Name == intdb.SQLite.Name {
		dsn = withForeignKeys(dsn)
	}

	conn, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, dialect, fmt.Errorf("open %s: %w", dialect.Name, err)
	}

	if dialect.Name == intdb.SQLite.Name {
		// one writer; also keeps a :memory: database alive for the pool's lifetime
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(25)
		conn.SetConnMaxLifetime(10 * time.Minute)
		conn.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, dialect, fmt.Errorf("ping %s: %w", dialect.Name, err)
	}
	return conn, dialect, nil
}

// withForeignKeys turns on SQLite foreign key enforcement unless the DSN sets it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
