package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/azulpack/juridico-backend/internal/domain"
	"github.com/azulpack/juridico-backend/internal/service/process"
)

// multipartMemory is the part of a multipart form kept in memory; larger
// files spill to temporary files.
const multipartMemory = 8 << 20

type processService interface {
	List(ctx context.Context, input process.ListInput) ([]domain.Process, error)
	Get(ctx context.Context, id int64) (domain.Process, error)
	Create(ctx context.Context, input process.CreateInput) (domain.Process, error)
	Update(ctx context.Context, id int64, input process.UpdateInput) (domain.Process, error)
	Delete(ctx context.Context, id int64) error
}

// ProcessHandler serves /processes.
type ProcessHandler struct {
	svc            processService
	log            *slog.Logger
	maxUploadBytes int64
}

// NewProcessHandler creates a ProcessHandler. maxUploadBytes caps the whole
// multipart body of a create request.
func NewProcessHandler(svc processService, logger *slog.Logger, maxUploadBytes int64) *ProcessHandler {
	return &ProcessHandler{svc: svc, log: logger.With("handler", "process"), maxUploadBytes: maxUploadBytes}
}

// List handles GET /processes?scope=mine|user|shared&userId=&q=&status=&company=.
func (h *ProcessHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := process.ListInput{
		Scope: domain.ProcessScopeKind(q.Get("scope")),
		Filter: domain.ProcessFilter{
			Query:   q.Get("q"),
			Status:  domain.ProcessStatus(q.Get("status")),
			Company: q.Get("company"),
		},
	}
	if input.Scope == "" {
		input.Scope = domain.ScopeMine
	}
	if raw := q.Get("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("userId", "must be a UUID"))
			return
		}
		input.UserID = id
	}

	processes, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProcessList(processes))
}

// Get handles GET /processes/{id}.
func (h *ProcessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProcessResponse(p))
}

// Create handles POST /processes. The body is multipart/form-data with the
// process fields as form values and the documents as repeated "file" parts.
func (h *ProcessHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("body", "invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	form := r.MultipartForm
	input := process.CreateInput{
		Title:       strings.TrimSpace(formValue(form, "titulo")),
		CaseNumber:  strings.TrimSpace(formValue(form, "numero_processo")),
		Description: formValue(form, "descricao"),
		Status:      domain.ProcessStatus(formValue(form, "status")),
		Companies:   form.Value["empresas_envolvidas"],
		Labels:      form.Value["etiquetas"],
	}
	for _, fh := range form.File["file"] {
		input.Files = append(input.Files, toUpload(fh))
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProcessResponse(p))
}

type updateProcessRequest struct {
	Title       *string   `json:"titulo"`
	CaseNumber  *string   `json:"numero_processo"`
	Description *string   `json:"descricao"`
	Status      *string   `json:"status"`
	Companies   *[]string `json:"empresas_envolvidas"`
	Labels      *[]string `json:"etiquetas"`
	Summary     *string   `json:"resumo"`
	Defense     *string   `json:"defesa"`
}

func (req updateProcessRequest) toInput() process.UpdateInput {
	input := process.UpdateInput{
		Title:       req.Title,
		CaseNumber:  req.CaseNumber,
		Description: req.Description,
		Summary:     req.Summary,
		Defense:     req.Defense,
	}
	if req.Status != nil {
		st := domain.ProcessStatus(*req.Status)
		input.Status = &st
	}
	// An explicit empty array clears the list; an absent key leaves it.
	if req.Companies != nil {
		input.Companies = nonNil(*req.Companies)
	}
	if req.Labels != nil {
		input.Labels = nonNil(*req.Labels)
	}
	return input
}

// Update handles PATCH /processes/{id}.
func (h *ProcessHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateProcessRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProcessResponse(p))
}

// Delete handles DELETE /processes/{id}.
func (h *ProcessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func toUpload(fh *multipart.FileHeader) domain.Upload {
	return domain.Upload{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
