package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/azulpack/juridico-backend/internal/auth"
	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/pkg/ctxutil"
)

// SignOut revokes the given refresh session. It always succeeds for the
// caller: a store failure is logged and the client discards its tokens anyway.
func (s *Service) SignOut(ctx context.Context, input RefreshInput) error {
	if input.RefreshToken == "" {
		return nil
	}

	if err := s.sessions.Revoke(ctx, auth.HashToken(input.RefreshToken)); err != nil {
		s.log.WarnContext(ctx, "refresh session revoke failed", slog.String("error", err.Error()))
		return nil
	}

	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		s.log.InfoContext(ctx, "user signed out", slog.String("user_id", userID.String()))
	}
	return nil
}

// ValidateToken validates an access token and returns the identity it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Identity, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

// Me returns the caller's identity with the role looked up again, so a
// client can confirm the role before trusting a session.
func (s *Service) Me(ctx context.Context) (domain.Identity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Identity{}, domain.ErrUnauthorized
		}
		return domain.Identity{}, fmt.Errorf("auth.Me: %w", err)
	}

	return domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   s.resolveRole(ctx, user.ID),
	}, nil
}
