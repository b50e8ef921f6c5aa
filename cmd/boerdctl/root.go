package main

import (
	"fmt"
	"os"

	"github.com/dhiyaancnirmal/boerd/internal/config"
	"github.com/dhiyaancnirmal/boerd/internal/database"
	"github.com/dhiyaancnirmal/boerd/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	envFile string
	verbose bool

	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "boerdctl",
	Short: "Administer a boerd database",
	Long: `boerdctl runs maintenance tasks against the database and storage
configured for the boerd server: migrations, seeding, users and health.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		level := "info"
		if verbose {
			level = "debug"
		}
		logData, err := logging.New().FromBuffer(os.Stderr).WithLevel(level).WithFormat("console").Make()
		if err != nil {
			return err
		}
		log = logData.Logger
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "f", "", "Load variables from this .env file first")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging, including SQL")
}

// openDB connects with the loaded configuration
func openDB() (*gorm.DB, error) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return database.Connect(cfg, database.Options{LogLevel: logging.GormLevel(level), Log: log})
}
