package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/estate/internal/config"
	"github.com/MrJamesThe3rd/estate/internal/database"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the estate database schema",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(upCmd(), downCmd(), versionCmd(), forceCmd())

	if err := rootCmd.Execute(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

// withMigrator opens a migrator for the configured database and closes it
// after fn returns.
func withMigrator(fn func(m *database.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	m, err := database.NewMigrator(cfg.ConnectionString())
	if err != nil {
		return err
	}

	defer func() {
		if err := m.Close(); err != nil {
			slog.Error("failed to close migrator", "error", err)
		}
	}()

	return fn(m)
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}

				return printVersion(cmd, m)
			})
		},
	}
}

func downCmd() *cobra.Command {
	var (
		steps int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && steps <= 0 {
				return fmt.Errorf("--steps must be positive, or pass --all")
			}

			if all {
				steps = 0
			}

			return withMigrator(func(m *database.Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}

				return printVersion(cmd, m)
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")
	cmd.Flags().BoolVar(&all, "all", false, "roll back every migration")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				return printVersion(cmd, m)
			})
		},
	}
}

func forceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Set the schema version without running migrations and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}

			return withMigrator(func(m *database.Migrator) error {
				if err := m.Force(version); err != nil {
					return err
				}

				return printVersion(cmd, m)
			})
		},
	}
}

func printVersion(cmd *cobra.Command, m *database.Migrator) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}

	state := "clean"
	if dirty {
		state = "dirty"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (%s)\n", v, state)

	return nil
}
