package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/azulpack/juridico-backend/internal/auth"
	"github.com/azulpack/juridico-backend/internal/domain"
)

// Refresh rotates the refresh session and returns a new token pair with a
// freshly resolved role. A token can be exchanged once; a second attempt
// returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Consume(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "unknown or reused refresh token")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh consume session: %w", err)
	}

	if sess.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", sess.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	identity := domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   s.resolveRole(ctx, user.ID),
	}

	result, err := s.issueTokens(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
