package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmailNotFound is displayed when a share recipient's email cannot be resolved.
const EmailNotFound = "Email não encontrado"

// ShareGrant gives a second user access to a process they do not own.
type ShareGrant struct {
	ID         uuid.UUID
	ProcessID  int64
	SharedBy   uuid.UUID
	SharedWith uuid.UUID
	CreatedAt  time.Time
}

// ShareRecipient is a grant enriched for display.
type ShareRecipient struct {
	Grant ShareGrant
	Email string
}
