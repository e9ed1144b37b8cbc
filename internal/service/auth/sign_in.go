package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// SignIn authenticates a user with email + password. The role is resolved
// before any token is issued, so the returned identity is final.
// Returns ErrInvalidCredentials if the email is unknown or the password is wrong.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	ok, err := s.passwords.Verify(user.PasswordHash, input.Password)
	if err != nil {
		s.log.ErrorContext(ctx, "stored password hash unreadable",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	identity := domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   s.resolveRole(ctx, user.ID),
	}

	result, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", identity.Role.String()))

	return result, nil
}
