package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"olive/database"
	"olive/pkg/store"
	"olive/pkg/store/fixtures"
)

func newSeedCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo fixtures into the SQLite database",
		Long: `Write the demo users, fields, tasks and lifecycles into the SQLite database.

Records that already exist are left untouched, so seeding twice is harmless.
Every fixture account logs in with the demo password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				dbPath = loadConfig().DBPath
			}
			db, err := database.OpenSQLite(dbPath)
			if err != nil {
				return err
			}
			n, err := store.Seed(cmd.Context(), store.FromGorm(db), fixtures.Build(time.Now()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d records into %s (password %q)\n", n, dbPath, fixtures.DemoPassword)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file (default DB_PATH)")
	return cmd
}
