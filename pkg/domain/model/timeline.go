package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
)

// TimelineEventID is a UUID-based identifier for TimelineEvent
type TimelineEventID string

// NewTimelineEventID generates a new UUID v4 TimelineEventID
func NewTimelineEventID() TimelineEventID {
	return TimelineEventID(uuid.New().String())
}

// TimelineEvent is a user-authored or assistant-authored record of something
// that happened around the dismissal. Title and EventDate are mandatory; all
// other fields are optional. Events are appended, edited by the user, or
// deleted by explicit user action; they are never auto-deleted.
type TimelineEvent struct {
	ID             TimelineEventID
	UserID         string
	Title          string
	Description    string
	EventDate      time.Time // date only, midnight UTC
	EventType      types.EventType
	PeopleInvolved string
	EvidenceNotes  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the mandatory fields
func (e *TimelineEvent) Validate() error {
	if e.Title == "" {
		return ErrTitleRequired
	}
	if e.EventDate.IsZero() {
		return ErrEventDateRequired
	}
	return nil
}
