package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

// ListUsers returns every account with its profile name, email and role.
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.ListUsers: %w", err)
	}
	return users, nil
}

// ProvisionUser creates an account, its profile and its role in a single
// transaction. The name defaults to the local part of the email and the role
// to user.
func (s *Service) ProvisionUser(ctx context.Context, input ProvisionUserInput) (domain.UserSummary, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return domain.UserSummary{}, err
	}

	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(s.minPassword); err != nil {
		return domain.UserSummary{}, err
	}
	if input.Role == "" {
		input.Role = domain.UserRoleUser
	}
	if input.Name == "" {
		input.Name = domain.DefaultProfileName(input.Email)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.UserSummary{}, fmt.Errorf("admin.ProvisionUser: hash password: %w", err)
	}

	var summary domain.UserSummary
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.Create(ctx, domain.User{
			Email:        domain.NormalizeEmail(input.Email),
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		profile, err := s.users.UpsertProfile(ctx, user.ID, input.Name)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		if err := s.users.SetRole(ctx, user.ID, input.Role); err != nil {
			return fmt.Errorf("set role: %w", err)
		}

		summary = domain.UserSummary{
			UserID:    user.ID,
			Email:     user.Email,
			Name:      profile.Name,
			Role:      input.Role,
			CreatedAt: user.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return domain.UserSummary{}, fmt.Errorf("admin.ProvisionUser: %w", err)
	}

	s.log.InfoContext(ctx, "user provisioned",
		slog.String("user_id", summary.UserID.String()),
		slog.String("role", summary.Role.String()),
	)

	return summary, nil
}

// SetUserRole grants or revokes the admin role. An admin cannot demote themselves.
func (s *Service) SetUserRole(ctx context.Context, target uuid.UUID, role domain.UserRole) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "must be 'user' or 'admin'")
	}
	if caller == target && !role.IsAdmin() {
		return domain.NewValidationError("role", "cannot demote yourself")
	}

	if err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.users.SetRole(ctx, target, role)
	}); err != nil {
		return fmt.Errorf("admin.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", target.String()),
		slog.String("new_role", role.String()),
	)
	return nil
}

// DeleteUser removes an account and everything it owns. Admins cannot delete
// their own account. Refresh sessions of the removed user are revoked
// afterwards; a revocation failure is logged only.
func (s *Service) DeleteUser(ctx context.Context, target uuid.UUID) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if caller == target {
		return fmt.Errorf("admin.DeleteUser: cannot delete own account: %w", domain.ErrForbidden)
	}

	if err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.users.Delete(ctx, target)
	}); err != nil {
		return fmt.Errorf("admin.DeleteUser: %w", err)
	}

	if err := s.sessions.RevokeAllForUser(ctx, target); err != nil {
		s.log.WarnContext(ctx, "revoke sessions of deleted user",
			slog.String("user_id", target.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("target_user_id", target.String()))
	return nil
}

// ListProcessesForUser returns the processes owned by target, newest first.
func (s *Service) ListProcessesForUser(ctx context.Context, target uuid.UUID) ([]domain.Process, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if target == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	processes, err := s.processes.List(ctx, caller, domain.ProcessScope{Kind: domain.ScopeUser, UserID: target})
	if err != nil {
		return nil, fmt.Errorf("admin.ListProcessesForUser: %w", err)
	}
	return processes, nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return caller, nil
}
