package process

import (
	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

const (
	maxTitleLen       = 500
	maxCaseNumberLen  = 100
	maxDescriptionLen = 20000
	maxTags           = 50
	maxFiles          = 20
)

// ListInput selects and filters processes.
type ListInput struct {
	Scope  domain.ProcessScopeKind
	UserID uuid.UUID // target user for ScopeUser
	Filter domain.ProcessFilter
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.Scope.IsValid() {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "must be mine, user or shared"})
	}
	if i.Scope == domain.ScopeUser && i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required for scope user"})
	}
	if i.Filter.Status != "" && !i.Filter.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateInput holds the fields of a new process and its documents.
type CreateInput struct {
	Title       string
	CaseNumber  string
	Description string
	Status      domain.ProcessStatus
	Companies   []string
	Labels      []string
	Files       []domain.Upload
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "titulo", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "titulo", Message: "too long"})
	}

	if i.CaseNumber == "" {
		errs = append(errs, domain.FieldError{Field: "numero_processo", Message: "required"})
	} else if len(i.CaseNumber) > maxCaseNumberLen {
		errs = append(errs, domain.FieldError{Field: "numero_processo", Message: "too long"})
	}

	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "descricao", Message: "too long"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	errs = append(errs, validateTags("empresas_envolvidas", i.Companies)...)
	errs = append(errs, validateTags("etiquetas", i.Labels)...)

	if len(i.Files) > maxFiles {
		errs = append(errs, domain.FieldError{Field: "file", Message: "too many files"})
	}
	for _, f := range i.Files {
		if f.Name == "" || f.Open == nil {
			errs = append(errs, domain.FieldError{Field: "file", Message: "unnamed or unreadable file"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	CaseNumber  *string
	Description *string
	Status      *domain.ProcessStatus
	Companies   []string
	Labels      []string
	Summary     *string
	Defense     *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil && len(*i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "titulo", Message: "too long"})
	}
	if i.CaseNumber != nil && len(*i.CaseNumber) > maxCaseNumberLen {
		errs = append(errs, domain.FieldError{Field: "numero_processo", Message: "too long"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "descricao", Message: "too long"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	errs = append(errs, validateTags("empresas_envolvidas", i.Companies)...)
	errs = append(errs, validateTags("etiquetas", i.Labels)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) patch() domain.ProcessPatch {
	return domain.ProcessPatch{
		Title:       i.Title,
		CaseNumber:  i.CaseNumber,
		Description: i.Description,
		Status:      i.Status,
		Companies:   i.Companies,
		Labels:      i.Labels,
		Summary:     i.Summary,
		Defense:     i.Defense,
	}
}

func validateTags(field string, tags []string) []domain.FieldError {
	if len(tags) > maxTags {
		return []domain.FieldError{{Field: field, Message: "too many values"}}
	}
	for _, t := range tags {
		if t == "" {
			return []domain.FieldError{{Field: field, Message: "empty value"}}
		}
	}
	return nil
}
