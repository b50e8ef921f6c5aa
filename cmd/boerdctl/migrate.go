package main

import (
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the boerd tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database %s\n", cfg.DBType, cfg.DBDatabase)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
