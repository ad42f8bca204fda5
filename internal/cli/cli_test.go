package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	addr, dbDriver, dbDSN, logLevel, printSQL = "", "", "", "", false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestMigratePrintSQL(t *testing.T) {
	out := runCLI(t, "migrate", "--db-driver", "postgres", "--print-sql")
	assert.Contains(t, out, "GENERATED BY DEFAULT AS IDENTITY")
	assert.Equal(t, 5, strings.Count(out, "CREATE TABLE IF NOT EXISTS"))
}

func TestMigrateSQLiteFile(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	dsn := "file:" + filepath.Join(t.TempDir(), "bus.db")

	out := runCLI(t, "migrate", "--db-dsn", dsn)
	assert.Contains(t, out, "created tables: bus, driver, route, schedule, ticket")

	out = runCLI(t, "migrate", "--db-dsn", dsn)
	assert.Contains(t, out, "schema up to date")
}

func TestLoadEnvFlagsOverride(t *testing.T) {
	t.Setenv("APP_ADDR", ":1111")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")
	addr, dbDriver, dbDSN, logLevel = ":2222", "mysql", "", "debug"
	defer func() { addr, dbDriver, dbDSN, logLevel = "", "", "", "" }()

	env, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, ":2222", env.AppAddr)
	assert.Equal(t, "mysql", env.DBDriver)
	assert.Empty(t, env.DBDSN, "sqlite default DSN must not leak into mysql")
	assert.Equal(t, "debug", env.LogLevel)
}
