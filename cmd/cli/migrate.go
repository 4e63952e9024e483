package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/gocredit/internal/infrastructure/config"
	"github.com/iho/gocredit/internal/infrastructure/logger"
	"github.com/iho/gocredit/internal/infrastructure/postgres"
)

type migrateOptions struct {
	databaseURL string
	path        string
}

// resolve fills unset flags from the server's environment configuration.
func (o *migrateOptions) resolve() error {
	if o.databaseURL != "" && o.path != "" {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.databaseURL == "" {
		o.databaseURL = cfg.DatabaseURL
	}
	if o.path == "" {
		o.path = cfg.MigrationsPath
	}
	return nil
}

func migrateCmd() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the credit line database schema",
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.path, "path", "", "Migrations directory (defaults to MIGRATIONS_PATH)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := opts.resolve(); err != nil {
					return err
				}
				return postgres.RunMigrations(opts.databaseURL, opts.path, cliLogger())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := opts.resolve(); err != nil {
					return err
				}
				return postgres.RunMigrationsDown(opts.databaseURL, opts.path, cliLogger())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := opts.resolve(); err != nil {
					return err
				}
				status, err := postgres.GetMigrationStatus(opts.databaseURL, opts.path)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"version":  status.Version,
					"dirty":    status.Dirty,
					"pristine": status.Pristine,
				})
			},
		},
	)

	return cmd
}

func cliLogger() zerolog.Logger {
	return logger.NewWithWriter(logger.Config{Level: "info", Format: "console"}, os.Stderr)
}
