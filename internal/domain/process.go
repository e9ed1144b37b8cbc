package domain

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Process is a tracked legal case.
type Process struct {
	ID          int64
	OwnerID     uuid.UUID
	Title       string
	CaseNumber  string
	Description string
	Status      ProcessStatus
	Companies   []string
	Labels      []string
	Summary     string
	Defense     string
	Analysis    string // latest saved defense analysis
	FileURLs    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName is the label shown for a process in listings: the title,
// then the case number, then "-".
func (p *Process) DisplayName() string {
	switch {
	case p.Title != "":
		return p.Title
	case p.CaseNumber != "":
		return p.CaseNumber
	default:
		return "-"
	}
}

// IsOwnedBy reports whether userID owns the process.
func (p *Process) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

// ProcessPatch carries a partial update. Nil fields are left unchanged.
type ProcessPatch struct {
	Title       *string
	CaseNumber  *string
	Description *string
	Status      *ProcessStatus
	Companies   []string
	Labels      []string
	Summary     *string
	Defense     *string
	Analysis    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProcessPatch) IsEmpty() bool {
	return p.Title == nil && p.CaseNumber == nil && p.Description == nil &&
		p.Status == nil && p.Companies == nil && p.Labels == nil &&
		p.Summary == nil && p.Defense == nil && p.Analysis == nil
}

// ProcessScopeKind selects whose processes a listing returns.
type ProcessScopeKind string

const (
	ScopeMine   ProcessScopeKind = "mine"
	ScopeUser   ProcessScopeKind = "user"
	ScopeShared ProcessScopeKind = "shared"
)

func (k ProcessScopeKind) IsValid() bool {
	switch k {
	case ScopeMine, ScopeUser, ScopeShared:
		return true
	}
	return false
}

// ProcessScope is a resolved listing scope.
type ProcessScope struct {
	Kind   ProcessScopeKind
	UserID uuid.UUID
}

// ProcessFilter narrows an already fetched list of processes.
// Zero-valued fields do not filter.
type ProcessFilter struct {
	Query   string
	Status  ProcessStatus
	Company string
}

// Apply returns the processes matching every non-empty criterion,
// preserving input order.
func (f ProcessFilter) Apply(processes []Process) []Process {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]Process, 0, len(processes))
	for _, p := range processes {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.CaseNumber), query) {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.Company != "" && !slices.Contains(p.Companies, f.Company) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FileRef is an uploaded document as stored on a process.
type FileRef struct {
	Name string
	URL  string
	Size int64
}

// FileURLs extracts the stored URLs in order.
func FileURLs(refs []FileRef) []string {
	urls := make([]string, len(refs))
	for i, r := range refs {
		urls[i] = r.URL
	}
	return urls
}

// Upload is a document submitted with a process. Open may be called more
// than once; every call yields the content from the start.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Open        func() (io.ReadCloser, error)
}
