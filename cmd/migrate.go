package main

import (
	"errors"

	"github.com/mydocmaker/api/internal/config"
	"github.com/mydocmaker/api/internal/db"
	"github.com/spf13/cobra"
)

var errDatabaseURLRequired = errors.New("DATABASE_URL is required")

func newMigrateCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	dsn := func() (string, error) {
		cfg, err := loadConfig()
		if err != nil {
			return "", err
		}
		if cfg.DatabaseURL == "" {
			return "", errDatabaseURLRequired
		}
		return cfg.DatabaseURL, nil
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := dsn()
			if err != nil {
				return err
			}
			return db.MigrateUp(url)
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := dsn()
			if err != nil {
				return err
			}
			return db.MigrateDown(url, steps)
		},
	}
	downCmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back, 0 for all")

	migrateCmd.AddCommand(upCmd, downCmd)
	return migrateCmd
}
