package main

import (
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm/logger"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the SQLite DDL the models migrate to",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect(&config.Config{
			DBType:     "sqlite-pure",
			DBDatabase: ":memory:",
		}, database.Options{LogLevel: logger.Silent, Log: log})
		if err != nil {
			return err
		}
		defer database.Close(db)

		// Auto-migrate to see what GORM creates
		if err := database.AutoMigrate(db); err != nil {
			return err
		}

		var tables []string
		if err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").Scan(&tables).Error; err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, table := range tables {
			var ddl []string
			err := db.Raw("SELECT sql FROM sqlite_master WHERE tbl_name = ? AND sql IS NOT NULL ORDER BY type DESC, name", table).
				Scan(&ddl).Error
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n=== Table: %s ===\n", table)
			for _, stmt := range ddl {
				fmt.Fprintln(out, stmt+";")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
