package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
)

// Process payloads keep the column names clients already use.
type processResponse struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"titulo"`
	CaseNumber  string    `json:"numero_processo"`
	Description string    `json:"descricao"`
	Status      string    `json:"status"`
	Companies   []string  `json:"empresas_envolvidas"`
	Labels      []string  `json:"etiquetas"`
	Summary     string    `json:"resumo"`
	Defense     string    `json:"defesa"`
	Analysis    string    `json:"analise_defesa"`
	FileURLs    []string  `json:"arquivos_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProcessResponse(p domain.Process) processResponse {
	return processResponse{
		ID:          p.ID,
		UserID:      p.OwnerID,
		Title:       p.Title,
		CaseNumber:  p.CaseNumber,
		Description: p.Description,
		Status:      p.Status.String(),
		Companies:   nonNil(p.Companies),
		Labels:      nonNil(p.Labels),
		Summary:     p.Summary,
		Defense:     p.Defense,
		Analysis:    p.Analysis,
		FileURLs:    nonNil(p.FileURLs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProcessList(ps []domain.Process) []processResponse {
	out := make([]processResponse, len(ps))
	for i, p := range ps {
		out[i] = toProcessResponse(p)
	}
	return out
}

type identityResponse struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	IsAdmin bool      `json:"isAdmin"`
}

func toIdentityResponse(id domain.Identity) identityResponse {
	return identityResponse{ID: id.UserID, Email: id.Email, Role: id.Role.String(), IsAdmin: id.IsAdmin()}
}

type userSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"nome"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserSummaries(us []domain.UserSummary) []userSummaryResponse {
	out := make([]userSummaryResponse, len(us))
	for i, u := range us {
		out[i] = userSummaryResponse{ID: u.UserID, Email: u.Email, Name: u.Name, Role: u.Role.String(), CreatedAt: u.CreatedAt}
	}
	return out
}

type userEmailResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func toUserEmails(us []domain.UserEmail) []userEmailResponse {
	out := make([]userEmailResponse, len(us))
	for i, u := range us {
		out[i] = userEmailResponse{ID: u.UserID, Email: u.Email}
	}
	return out
}

type shareResponse struct {
	ID         uuid.UUID `json:"id"`
	ProcessID  int64     `json:"processo_id"`
	SharedBy   uuid.UUID `json:"compartilhado_por"`
	SharedWith uuid.UUID `json:"compartilhado_com"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

func toShareResponse(s domain.ShareRecipient) shareResponse {
	return shareResponse{
		ID:         s.Grant.ID,
		ProcessID:  s.Grant.ProcessID,
		SharedBy:   s.Grant.SharedBy,
		SharedWith: s.Grant.SharedWith,
		Email:      s.Email,
		CreatedAt:  s.Grant.CreatedAt,
	}
}

type defenseResponse struct {
	ID        uuid.UUID `json:"id"`
	ProcessID int64     `json:"processo_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"conteudo"`
	Version   int       `json:"versao"`
	CreatedAt time.Time `json:"created_at"`
}

func toDefenseResponse(d domain.DefenseVersion) defenseResponse {
	return defenseResponse{
		ID:        d.ID,
		ProcessID: d.ProcessID,
		UserID:    d.UserID,
		Content:   d.Content,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
	}
}

type analysisResponse struct {
	ID              uuid.UUID `json:"id"`
	ProcessID       int64     `json:"processo_id"`
	UserID          uuid.UUID `json:"user_id"`
	AnalyzedDefense string    `json:"defesa_analisada"`
	Content         string    `json:"conteudo_analise"`
	Version         int       `json:"versao"`
	CreatedAt       time.Time `json:"created_at"`
}

func toAnalysisResponse(a domain.AnalysisVersion) analysisResponse {
	return analysisResponse{
		ID:              a.ID,
		ProcessID:       a.ProcessID,
		UserID:          a.UserID,
		AnalyzedDefense: a.AnalyzedDefense,
		Content:         a.Content,
		Version:         a.Version,
		CreatedAt:       a.CreatedAt,
	}
}

type activityResponse struct {
	ID          uuid.UUID       `json:"id"`
	Action      string          `json:"action"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	UserID      *uuid.UUID      `json:"user_id"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Label       string          `json:"label"`
	ProcessName string          `json:"process_name"`
	UserDisplay string          `json:"user_display"`
	ActorID     *uuid.UUID      `json:"actor_id"`
}

func toActivityList(es []domain.ActivityEntry) []activityResponse {
	out := make([]activityResponse, len(es))
	for i, e := range es {
		var details json.RawMessage
		if json.Valid(e.Record.Details) {
			details = e.Record.Details
		}
		out[i] = activityResponse{
			ID:          e.Record.ID,
			Action:      e.Record.Action.String(),
			EntityType:  e.Record.EntityType.String(),
			EntityID:    e.Record.EntityID,
			UserID:      e.Record.UserID,
			Details:     details,
			CreatedAt:   e.Record.CreatedAt,
			Label:       e.Label,
			ProcessName: e.ProcessName,
			UserDisplay: e.UserDisplay,
			ActorID:     e.ActorID,
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
