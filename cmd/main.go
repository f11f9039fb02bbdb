package main

import (
	"errors"
	"fmt"
	"os"

	"clinic-queue/cmd/bootstrap"
	"clinic-queue/config"
	"clinic-queue/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errSQLiteMigrations = errors.New("sqlite schema is migrated on startup; migrate applies to postgres only")

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-queue",
		Short: "Clinic appointment management service",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if runMigrations && !cfg.DB.UsesSQLite() {
				if err := database.MigrateUp(cfg.DB); err != nil {
					return err
				}
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg)
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			// Run the application
			return app.Run()
		},
	}

	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgresConfig(database.MigrateUp)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPostgresConfig(database.MigrateDown)
		},
	})

	return cmd
}

func withPostgresConfig(run func(config.DBConfig) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.DB.UsesSQLite() {
		return errSQLiteMigrations
	}
	return run(cfg.DB)
}
