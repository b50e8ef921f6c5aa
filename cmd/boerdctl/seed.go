package main

import (
	"fmt"

	"github.com/dhiyaancnirmal/boerd/data"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/metadata"
	"github.com/dhiyaancnirmal/boerd/internal/models"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/dhiyaancnirmal/boerd/internal/storage"
	"github.com/spf13/cobra"
)

var (
	seedDisplayName string
	seedDemo        bool
	seedFetch       bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default user, and optionally demo boards",
	Long: `Create DEFAULT_USERNAME if it does not exist yet.
With --demo, an empty account also gets a few boards filled with text and link blocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := log.WithContext(cmd.Context())
		out := cmd.OutOrStdout()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		user, created, err := services.EnsureUser(ctx, db, cfg.DefaultUsername, seedDisplayName)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "Created user %s\n", user.Username)
		} else {
			fmt.Fprintf(out, "User %s already exists\n", user.Username)
		}

		if !seedDemo {
			return nil
		}

		existing, err := services.GetUserBoards(ctx, db, user.Username)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			fmt.Fprintf(out, "User %s already has boards, skipping demo data\n", user.Username)
			return nil
		}

		store, err := storage.New(cfg)
		if err != nil {
			return err
		}
		var fetcher services.MetadataFetcher
		if seedFetch {
			fetcher = metadata.NewFetcher(cfg.FetchTimeout, log)
		}
		ingestor := services.NewIngestor(db, store, fetcher, log)

		boards, err := data.Demo()
		if err != nil {
			return err
		}
		for _, demo := range boards {
			var description *string
			if demo.Description != "" {
				description = &demo.Description
			}
			board, err := services.CreateBoard(ctx, db, user.ID, demo.Title, description, models.BoardStatus(demo.Status))
			if err != nil {
				return fmt.Errorf("failed to create board %q: %w", demo.Title, err)
			}
			for _, input := range demo.Inputs {
				if _, err := ingestor.CreateFromText(ctx, user.ID, input, board.ID); err != nil {
					return fmt.Errorf("failed to add %q to %s: %w", input, board.Slug, err)
				}
			}
			fmt.Fprintf(out, "Created board %s with %d blocks\n", board.Slug, len(demo.Inputs))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedDisplayName, "display-name", "Me", "Display name for a newly created user")
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "Add demo boards to an empty account")
	seedCmd.Flags().BoolVar(&seedFetch, "fetch", false, "Fetch link metadata and thumbnails for demo blocks")
	rootCmd.AddCommand(seedCmd)
}
