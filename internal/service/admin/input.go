package admin

import (
	"net/mail"

	"github.com/azulpack/juridico-backend/internal/domain"
)

const maxNameLen = 200

// ProvisionUserInput describes an account created by an administrator.
type ProvisionUserInput struct {
	Email    string
	Password string
	Role     domain.UserRole
	Name     string
}

// Validate validates the provisioning input. minPassword is the configured
// minimum password length.
func (i ProvisionUserInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPassword {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	}

	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be 'user' or 'admin'"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "nome", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
