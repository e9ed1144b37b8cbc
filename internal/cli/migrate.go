package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/azulpack/juridico-backend/internal/adapter/postgres"
)

// migrator is the subset of *goose.Provider used by the migrate commands.
type migrator interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
}

// NewMigrateCommand creates the migrate command group.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded database migrations",
	}

	cmd.AddCommand(
		migrateSubcommand(rootOpts, "up", "Apply all pending migrations", runMigrateUp),
		migrateSubcommand(rootOpts, "down", "Roll back the most recent migration", runMigrateDown),
		migrateSubcommand(rootOpts, "status", "List migrations and whether they are applied", runMigrateStatus),
	)
	return cmd
}

func migrateSubcommand(
	rootOpts *RootOptions,
	use, short string,
	run func(ctx context.Context, m migrator, out io.Writer) error,
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, e, err := connect(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer e.Close()

			db := stdlib.OpenDBFromPool(e.pool)
			defer db.Close()

			provider, err := postgres.NewMigrator(db)
			if err != nil {
				return err
			}
			return run(ctx, provider, cmd.OutOrStdout())
		},
	}
}

func runMigrateUp(ctx context.Context, m migrator, out io.Writer) error {
	results, err := m.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No pending migrations.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "applied %05d %s (%s)\n", r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	return nil
}

func runMigrateDown(ctx context.Context, m migrator, out io.Writer) error {
	r, err := m.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	fmt.Fprintf(out, "rolled back %05d %s\n", r.Source.Version, r.Source.Path)
	return nil
}

func runMigrateStatus(ctx context.Context, m migrator, out io.Writer) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		applied := "-"
		if s.State == goose.StateApplied {
			applied = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%05d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}
	return tw.Flush()
}
