package interfaces

import (
	"context"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
)

// TimelineRepository defines the interface for TimelineEvent persistence.
// Writes are simple inserts into an append-only log: repeated identical
// saves create separate rows, there is no dedup and no optimistic
// concurrency requirement.
type TimelineRepository interface {
	// Create inserts a new timeline event for the user
	Create(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error)

	// Get retrieves a timeline event by ID
	Get(ctx context.Context, userID string, id model.TimelineEventID) (*model.TimelineEvent, error)

	// List retrieves all timeline events for the user, newest event date first
	List(ctx context.Context, userID string) ([]*model.TimelineEvent, error)

	// Update replaces an existing timeline event (direct user edit)
	Update(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error)

	// Delete removes a timeline event by ID (explicit user action)
	Delete(ctx context.Context, userID string, id model.TimelineEventID) error
}
