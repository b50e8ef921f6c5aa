package main

import (
	"encoding/json"
	"fmt"

	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/services"
	"github.com/spf13/cobra"
)

var userDisplayName string

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		user, created, err := services.EnsureUser(log.WithContext(cmd.Context()), db, args[0], userDisplayName)
		if err != nil {
			return err
		}
		if !created {
			return fmt.Errorf("user %s already exists", user.Username)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Print a user profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		profile, err := services.GetUserProfile(log.WithContext(cmd.Context()), db, args[0])
		if err != nil {
			return fmt.Errorf("user %s: %w", args[0], err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userDisplayName, "display-name", "", "Display name")
	userCmd.AddCommand(userCreateCmd, userShowCmd)
	rootCmd.AddCommand(userCmd)
}
