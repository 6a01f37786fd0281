package interfaces

import (
	"context"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
)

// DeadlineRepository defines the interface for persisted deadline entries
// and reminders. Entries are immutable once created.
type DeadlineRepository interface {
	// Create inserts a new deadline entry for the user
	Create(ctx context.Context, userID string, entry *model.DeadlineEntry) (*model.DeadlineEntry, error)

	// List retrieves all deadline entries for the user, soonest due first
	List(ctx context.Context, userID string) ([]*model.DeadlineEntry, error)

	// Delete removes a deadline entry by ID
	Delete(ctx context.Context, userID string, id model.DeadlineEntryID) error
}
