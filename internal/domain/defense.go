package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefenseVersion is an immutable snapshot of a generated defense.
type DefenseVersion struct {
	ID        uuid.UUID
	ProcessID int64
	UserID    uuid.UUID
	Content   string
	Version   int
	CreatedAt time.Time
}

// AnalysisVersion is an immutable snapshot of a defense analysis together
// with the defense text it critiques.
type AnalysisVersion struct {
	ID              uuid.UUID
	ProcessID       int64
	UserID          uuid.UUID
	AnalyzedDefense string
	Content         string
	Version         int
	CreatedAt       time.Time
}

// GenerationResult is the outcome of one AI workflow invocation.
type GenerationResult struct {
	Action    GenerationAction
	Text      string
	Persisted bool
	// Version is set when the result was also appended to the defense history.
	Version int
}
