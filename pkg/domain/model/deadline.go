package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
)

// Deadline is one computed legal deadline derived from an anchor date. It is
// a value, not an entity: deadlines are always computed fresh from the anchor
// and never interpolated from each other.
type Deadline struct {
	Kind    types.DeadlineKind
	Title   string
	Date    time.Time // date only, midnight UTC
	Urgency types.Urgency
}

// DeadlineEntryID is a UUID-based identifier for DeadlineEntry
type DeadlineEntryID string

// NewDeadlineEntryID generates a new UUID v4 DeadlineEntryID
func NewDeadlineEntryID() DeadlineEntryID {
	return DeadlineEntryID(uuid.New().String())
}

// DeadlineEntry is a persisted deadline or reminder owned by a user. Entries
// are immutable once created; corrections create new entries.
type DeadlineEntry struct {
	ID        DeadlineEntryID
	UserID    string
	Kind      types.DeadlineKind
	Title     string
	Due       time.Time // date only, midnight UTC
	Urgency   types.Urgency
	CreatedAt time.Time
}

// Validate checks the mandatory fields
func (d *DeadlineEntry) Validate() error {
	if d.Title == "" {
		return ErrTitleRequired
	}
	if d.Due.IsZero() {
		return ErrDueDateRequired
	}
	return nil
}
