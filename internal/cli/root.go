// Package cli wires configuration, logging and the store into the
// busstation commands.
package cli

import (
	"fmt"
	"os"
	"strings"

	intconfig "busstation/internal/config"
	"busstation/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags; empty means "use the environment".
	addr     string
	dbDriver string
	dbDSN    string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "busstation",
	Short: "Bus station admin - web CRUD over buses, drivers, routes, schedules and tickets",
	Long: `busstation serves a small administrative web interface over five related tables.

Configuration comes from the environment (or a .env file) and can be
overridden with flags:
  APP_ADDR              listen address (default :8080)
  DB_DRIVER             sqlite | mysql | postgres (default sqlite)
  DB_DSN                connection string (default file:bus_station.db)
  LOG_LEVEL             debug | info | warn | error
  GIN_MODE              debug | release | test
  CORS_ALLOWED_ORIGINS  comma separated origins`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "Listen address (overrides APP_ADDR)")
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "Database driver: sqlite, mysql or postgres (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db-dsn", "", "Database connection string (overrides DB_DSN)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// loadEnv merges flags over the environment.
func loadEnv() (intconfig.Env, error) {
	env, err := intconfig.LoadEnv()
	if err != nil {
		return env, err
	}
	if v := strings.TrimSpace(addr); v != "" {
		env.AppAddr = v
	}
	if v := strings.TrimSpace(dbDriver); v != "" {
		env.DBDriver = strings.ToLower(v)
		if strings.TrimSpace(dbDSN) == "" && env.DBDriver != "sqlite" && env.DBDSN == intconfig.DefaultSQLiteDSN {
			env.DBDSN = ""
		}
	}
	if v := strings.TrimSpace(dbDSN); v != "" {
		env.DBDSN = v
	}
	if v := strings.TrimSpace(logLevel); v != "" {
		env.LogLevel = v
	}
	return env, nil
}

func newLogger(env intconfig.Env) (*zap.Logger, error) {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	return utils.NewLogger(gin.Mode(), env.LogLevel)
}
