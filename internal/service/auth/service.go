package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/config"
	"github.com/azulpack/juridico-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// sessionStore defines the refresh session storage needed by auth service.
type sessionStore interface {
	Save(ctx context.Context, sess domain.RefreshSession) error
	Consume(ctx context.Context, tokenHash string) (domain.RefreshSession, error)
	Revoke(ctx context.Context, tokenHash string) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(id domain.Identity) (string, error)
	ValidateAccessToken(token string) (domain.Identity, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// passwordVerifier checks a password against a stored hash.
type passwordVerifier interface {
	Verify(hash, password string) (bool, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	sessions  sessionStore
	jwt       jwtManager
	passwords passwordVerifier
	cfg       config.AuthConfig
	now       func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	jwt jwtManager,
	passwords passwordVerifier,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		sessions:  sessions,
		jwt:       jwt,
		passwords: passwords,
		cfg:       cfg,
		now:       time.Now,
	}
}

// resolveRole looks up the effective role. A failed lookup degrades to the
// regular role: the caller still signs in, only without admin rights.
func (s *Service) resolveRole(ctx context.Context, userID uuid.UUID) domain.UserRole {
	admin, err := s.users.IsAdmin(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "role lookup failed, treating as regular user",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return domain.UserRoleUser
	}
	return domain.RoleFromAdmin(admin)
}

// issueTokens generates access and refresh tokens for the identity and stores
// the refresh session.
func (s *Service) issueTokens(ctx context.Context, id domain.Identity) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(id)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	sess := domain.RefreshSession{
		TokenHash: hashRefresh,
		UserID:    id.UserID,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("store refresh session: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		Identity:     id,
	}, nil
}
