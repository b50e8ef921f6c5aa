package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/spf13/cobra"
)

var healthTimeout time.Duration

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the database and storage, printing the result as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		store, err := storage.New(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
		defer cancel()

		result := services.HealthCheck(ctx, cfg, db, store)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
		if !result.Healthy() {
			return fmt.Errorf("unhealthy: %s", result.ErrorMessage)
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().DurationVar(&healthTimeout, "timeout", 10*time.Second, "Give up after this long")
	rootCmd.AddCommand(healthCmd)
}
