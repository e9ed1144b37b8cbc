package auth

import (
	"time"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// AuthResult is returned by SignIn and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    time.Duration
	Identity     domain.Identity
}
