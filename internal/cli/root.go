// Package cli implements juridicoctl, the operator command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/azulpack/juridico-backend/internal/adapter/postgres"
	"github.com/azulpack/juridico-backend/internal/app"
	"github.com/azulpack/juridico-backend/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	EnvFile    string
	Timeout    time.Duration
}

// NewRootCommand creates the root juridicoctl command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "juridicoctl",
		Short:         "Operator tooling for the juridico backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Timeout <= 0 {
				return fmt.Errorf("invalid timeout %s: must be positive", opts.Timeout)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config.yaml (overrides CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", "", "path to a .env file")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", time.Minute, "overall command timeout")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewPromoteCommand(opts))
	cmd.AddCommand(NewCreateUserCommand(opts))

	return cmd
}

// env is the infrastructure a command needs once it is past flag validation.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	cancel context.CancelFunc
}

func (e *env) Close() {
	e.pool.Close()
	e.cancel()
}

// connect loads configuration and opens the database pool. The returned
// context carries the command timeout.
func connect(cmd *cobra.Command, opts *RootOptions) (context.Context, *env, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, nil, fmt.Errorf("load env file: %w", err)
		}
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFile(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	return ctx, &env{cfg: cfg, log: logger, pool: pool, cancel: cancel}, nil
}
