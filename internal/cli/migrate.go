package cli

import (
	"fmt"
	"strings"

	intconfig "busstation/internal/config"
	intdb "busstation/internal/db"

	"github.com/spf13/cobra"
)

var printSQL bool

// migrateCmd creates any missing tables and exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables without starting the server",
	Long: `Create the bus, driver, route, schedule and ticket tables if they do not exist.
Existing tables are left untouched; no seed data is written.

Examples:
  busstation migrate
  busstation migrate --db-driver mysql --db-dsn 'root:@tcp(127.0.0.1:3306)/bus_station'
  busstation migrate --db-driver postgres --print-sql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if printSQL {
			dialect, err := intdb.DialectFor(env.DBDriver)
			if err != nil {
				return err
			}
			for _, stmt := range intdb.SchemaStatements(dialect) {
				fmt.Fprintf(out, "%s;\n\n", stmt)
			}
			return nil
		}

		ctx := cmd.Context()
		conn, dialect, err := intconfig.OpenDB(ctx, env)
		if err != nil {
			return err
		}
		defer conn.Close()

		missing := intdb.MissingTables(ctx, conn, dialect)
		if len(missing) == 0 {
			fmt.Fprintln(out, "schema up to date")
			return nil
		}
		if err := intdb.CreateSchema(ctx, conn, dialect); err != nil {
			return err
		}
		fmt.Fprintf(out, "created tables: %s\n", strings.Join(missing, ", "))
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&printSQL, "print-sql", false, "Print the DDL for the selected driver instead of applying it")
}
