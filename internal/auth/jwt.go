package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// ErrEmptyToken is returned when no access token was presented.
var ErrEmptyToken = errors.New("access token is empty")

const refreshTokenBytes = 32

// JWTManager signs HS256 access tokens that carry the caller's resolved role,
// and mints opaque refresh tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager. Config validation enforces a
// secret of at least 32 characters.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// AccessTTL returns the lifetime of issued access tokens.
func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTTL
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// GenerateAccessToken signs a token for id. The role must already be
// resolved; an empty or unknown role is refused.
func (m *JWTManager) GenerateAccessToken(id domain.Identity) (string, error) {
	if !id.Role.IsValid() {
		return "", fmt.Errorf("auth.GenerateAccessToken: unresolved role %q", id.Role)
	}

	issued := m.now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.accessTTL)),
		},
		Email: id.Email,
		Role:  id.Role.String(),
	}).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth.GenerateAccessToken: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the
// identity the token was issued for. jwt/v5 sentinel errors stay matchable.
func (m *JWTManager) ValidateAccessToken(raw string) (domain.Identity, error) {
	if raw == "" {
		return domain.Identity{}, ErrEmptyToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	var claims accessClaims
	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return domain.Identity{}, fmt.Errorf("auth.ValidateAccessToken: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("auth.ValidateAccessToken: subject: %w", err)
	}
	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Identity{}, fmt.Errorf("auth.ValidateAccessToken: role claim %q", claims.Role)
	}

	return domain.Identity{UserID: userID, Email: claims.Email, Role: role}, nil
}

// GenerateRefreshToken returns a random token for the client and the digest
// under which its session is stored.
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("auth.GenerateRefreshToken: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(buf)
	return raw, HashToken(raw), nil
}

// HashToken is the hex SHA-256 of raw. Only hashes are persisted.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
