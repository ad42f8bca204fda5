package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"busstation/internal/registry"
)

// SchemaStatements renders CREATE TABLE IF NOT EXISTS statements for every
// registered table, referenced tables first.
func SchemaStatements(d Dialect) []string {
	out := []string{}
	for _, t := range registry.Tables() {
		cols := []string{"id " + d.IDColumn}
		for _, f := range t.Fields {
			cols = append(cols, fmt.Sprintf("%s %s NOT NULL", f.Name, columnType(d, f)))
		}
		for _, f := range t.References() {
			ref, err := registry.Lookup(f.Ref)
			if err != nil {
				continue
			}
			cols = append(cols, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(id)", f.Name, ref.SQLName))
		}
		out = append(out, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)%s",
			t.SQLName, strings.Join(cols, ",\n\t"), d.TableSuffix))
	}
	return out
}

func columnType(d Dialect, f registry.Field) string {
	switch f.Kind {
	case registry.KindDecimal:
		return d.DecimalType
	case registry.KindRef:
		return d.RefType
	default:
		size := f.Size
		if size <= 0 {
			size = 255
		}
		return fmt.Sprintf("VARCHAR(%d)", size)
	}
}

// CreateSchema creates all tables. Safe to call multiple times.
func CreateSchema(ctx context.Context, conn *sql.DB, d Dialect) error {
	for _, stmt := range SchemaStatements(d) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// HasTable reports whether the named table exists. Lookup errors count as absent.
func HasTable(ctx context.Context, conn *sql.DB, d Dialect, table string) bool {
	var name sql.NullString
	err := conn.QueryRowContext(ctx, d.Rebind(d.HasTableQuery), table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables lists registered tables that do not exist yet.
func MissingTables(ctx context.Context, conn *sql.DB, d Dialect) []string {
	out := []string{}
	for _, t := range registry.Tables() {
		if !HasTable(ctx, conn, d, t.SQLName) {
			out = append(out, t.SQLName)
		}
	}
	return out
}
