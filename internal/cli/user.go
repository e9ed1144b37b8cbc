package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/azulpack/juridico-backend/internal/adapter/postgres"
	userrepo "github.com/azulpack/juridico-backend/internal/adapter/postgres/user"
	"github.com/azulpack/juridico-backend/internal/auth"
	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/internal/service/admin"
)

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, name string) (domain.Profile, error)
	SetRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewPromoteCommand creates the promote command, which grants the admin role
// to an existing account. It is used to bootstrap the first administrator.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "promote --email=user@example.com",
		Short: "Grant the admin role to an existing user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(email) == "" {
				return errors.New("--email is required")
			}

			ctx, e, err := connect(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer e.Close()

			return runPromote(ctx, userrepo.New(e.pool), postgres.NewTxManager(e.pool), email, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	return cmd
}

func runPromote(ctx context.Context, users accountStore, tx txRunner, email string, out io.Writer) error {
	u, err := users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no user with email %q", email)
	}
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}

	isAdmin, err := users.IsAdmin(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if isAdmin {
		fmt.Fprintf(out, "User %q is already an admin.\n", u.Email)
		return nil
	}

	if err := tx.RunInTx(ctx, func(ctx context.Context) error {
		return users.SetRole(ctx, u.ID, domain.UserRoleAdmin)
	}); err != nil {
		return fmt.Errorf("grant admin: %w", err)
	}

	fmt.Fprintf(out, "User %q promoted to admin.\n", u.Email)
	return nil
}

// NewCreateUserCommand creates the create-user command.
func NewCreateUserCommand(rootOpts *RootOptions) *cobra.Command {
	var input admin.ProvisionUserInput
	var role string

	cmd := &cobra.Command{
		Use:   "create-user --email=... --password=...",
		Short: "Create an account with a profile and a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Role = domain.UserRole(role)

			ctx, e, err := connect(cmd, rootOpts)
			if err != nil {
				return err
			}
			defer e.Close()

			return runCreateUser(
				ctx,
				userrepo.New(e.pool),
				auth.NewPasswordHasher(e.cfg.Auth.PasswordHashCost),
				postgres.NewTxManager(e.pool),
				input,
				e.cfg.Auth.MinPasswordLength,
				cmd.OutOrStdout(),
			)
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "login email")
	cmd.Flags().StringVar(&input.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&input.Name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleUser), "user or admin")
	return cmd
}

func runCreateUser(
	ctx context.Context,
	users accountStore,
	hasher passwordHasher,
	tx txRunner,
	input admin.ProvisionUserInput,
	minPassword int,
	out io.Writer,
) error {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(minPassword); err != nil {
		return err
	}
	if input.Role == "" {
		input.Role = domain.UserRoleUser
	}
	if input.Name == "" {
		input.Name = domain.DefaultProfileName(input.Email)
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	var created domain.User
	err = tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = users.Create(ctx, domain.User{
			Email:        domain.NormalizeEmail(input.Email),
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
		if _, err := users.UpsertProfile(ctx, created.ID, input.Name); err != nil {
			return err
		}
		return users.SetRole(ctx, created.ID, input.Role)
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("a user with email %q already exists", input.Email)
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintf(out, "Created %s %q (%s).\n", input.Role, created.Email, created.ID)
	return nil
}
