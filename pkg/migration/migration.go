package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

const defaultSourceURL = "file://migrations"

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the root command with up, down and version sub commands
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "roll back the given number of migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				if steps <= 0 {
					return fmt.Errorf("steps must be positive, got %d", steps)
				}

				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()
				return ignoreNoChange(m.Steps(-steps))
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(defaultSourceURL, dsn)
				defer func() { _, _ = m.Close() }()

				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("Version: none")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println("Version:", version, "Dirty:", dirty)
				return nil
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting applies the migrations under rootDir/migrations
func MigrateUpForTesting(rootDir string, dsn string) error {
	m, err := migrate.New("file://"+path.Join(rootDir, "migrations"), "mysql://"+dsn)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	return ignoreNoChange(m.Up())
}
