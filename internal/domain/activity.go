package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultActivityLimit is the number of entries listed when no limit is given.
const DefaultActivityLimit = 50

// ActivityRecord is an append-only audit entry written by the database trigger.
type ActivityRecord struct {
	ID         uuid.UUID
	Action     ActivityAction
	EntityType EntityType
	EntityID   string
	UserID     *uuid.UUID
	Details    json.RawMessage
	CreatedAt  time.Time
}

// ProcessID returns the referenced process id when the record targets a process.
func (r *ActivityRecord) ProcessID() (int64, bool) {
	if r.EntityType != EntityTypeProcess || r.EntityID == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(r.EntityID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ActivityEntry is a record enriched for display.
type ActivityEntry struct {
	Record      ActivityRecord
	Label       string
	ProcessName string
	UserDisplay string
	// ActorID is the record's user, falling back to the process owner.
	ActorID *uuid.UUID
}

// ActivityDetails is the closed set of detail shapes an activity record can carry.
type ActivityDetails interface {
	activityDetails()
}

// ProcessChanges holds the process columns present in a detail blob.
// On UPDATE these are the changed columns only.
type ProcessChanges struct {
	Title      *string `json:"titulo"`
	CaseNumber *string `json:"numero_processo"`
	Status     *string `json:"status"`
	Summary    *string `json:"resumo"`
	Defense    *string `json:"defesa"`
	Analysis   *string `json:"analise_defesa"`
	OwnerID    *string `json:"user_id"`
}

// ProfileChanges holds the profile columns present in a detail blob.
type ProfileChanges struct {
	UserID *string `json:"user_id"`
	Name   *string `json:"nome"`
}

// UnknownDetails is any blob that does not match a known shape, including
// empty and malformed ones.
type UnknownDetails struct {
	Raw json.RawMessage
}

func (ProcessChanges) activityDetails() {}
func (ProfileChanges) activityDetails() {}
func (UnknownDetails) activityDetails() {}

func (c ProcessChanges) HasSummary() bool  { return nonEmpty(c.Summary) }
func (c ProcessChanges) HasDefense() bool  { return nonEmpty(c.Defense) }
func (c ProcessChanges) HasAnalysis() bool { return nonEmpty(c.Analysis) }

func nonEmpty(s *string) bool { return s != nil && *s != "" }

// ParseActivityDetails decodes a detail blob into the shape expected for entity.
// It never fails: anything unrecognised becomes UnknownDetails.
func ParseActivityDetails(entity EntityType, raw []byte) ActivityDetails {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return UnknownDetails{Raw: raw}
	}

	switch entity {
	case EntityTypeProcess:
		var c ProcessChanges
		if err := json.Unmarshal(trimmed, &c); err != nil {
			return UnknownDetails{Raw: raw}
		}
		return c
	case EntityTypeUserProfile:
		var c ProfileChanges
		if err := json.Unmarshal(trimmed, &c); err != nil {
			return UnknownDetails{Raw: raw}
		}
		return c
	default:
		return UnknownDetails{Raw: raw}
	}
}

var defaultActionLabels = map[ActivityAction]string{
	ActivityActionInsert: "Criou",
	ActivityActionUpdate: "Atualizou",
	ActivityActionDelete: "Excluiu",
}

// ActivityLabel derives the display label of an activity entry.
func ActivityLabel(action ActivityAction, entity EntityType, details ActivityDetails) string {
	if entity == EntityTypeProcess {
		switch action {
		case ActivityActionInsert:
			return "Criou Processo"
		case ActivityActionDelete:
			return "Excluiu Processo"
		case ActivityActionUpdate:
			if c, ok := details.(ProcessChanges); ok {
				switch {
				case c.HasSummary():
					return "Gerou Resumo"
				case c.HasDefense():
					return "Gerou Defesa"
				case c.HasAnalysis():
					return "Gerou Análise"
				}
			}
			return "Atualizou Processo"
		}
	}

	if label, ok := defaultActionLabels[action]; ok {
		return label
	}
	return string(action)
}

// UserDisplay picks the best available label for a user: name, then email,
// then the abbreviated id. A nil id renders as "-".
func UserDisplay(id *uuid.UUID, name, email string) string {
	switch {
	case id == nil:
		return "-"
	case name != "":
		return name
	case email != "":
		return email
	default:
		return AbbreviateUserID(*id)
	}
}
