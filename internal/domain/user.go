package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account able to sign in.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the display information of a user.
type Profile struct {
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is a user row in the admin console.
type UserSummary struct {
	UserID    uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CreatedAt time.Time
}

// Identity is the authenticated caller together with its resolved role.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   UserRole
}

func (i Identity) IsAdmin() bool { return i.Role.IsAdmin() }

// UserEmail pairs a user id with its email address.
type UserEmail struct {
	UserID uuid.UUID
	Email  string
}

// DefaultProfileName derives a display name from the local part of an email.
func DefaultProfileName(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return local
}

// NormalizeEmail lowercases and trims an email for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AbbreviateUserID renders a user id as its first 8 characters plus "...".
func AbbreviateUserID(id uuid.UUID) string {
	return id.String()[:8] + "..."
}

// RefreshSession is a rotating refresh credential kept in the session store.
type RefreshSession struct {
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *RefreshSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
