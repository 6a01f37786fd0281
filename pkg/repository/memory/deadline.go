package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
)

type deadlineRepository struct {
	mu      sync.RWMutex
	entries map[string]map[model.DeadlineEntryID]*model.DeadlineEntry
}

func newDeadlineRepository() *deadlineRepository {
	return &deadlineRepository{
		entries: make(map[string]map[model.DeadlineEntryID]*model.DeadlineEntry),
	}
}

func copyDeadlineEntry(d *model.DeadlineEntry) *model.DeadlineEntry {
	copied := *d
	return &copied
}

func (r *deadlineRepository) Create(ctx context.Context, userID string, entry *model.DeadlineEntry) (*model.DeadlineEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[userID]; !exists {
		r.entries[userID] = make(map[model.DeadlineEntryID]*model.DeadlineEntry)
	}

	created := copyDeadlineEntry(entry)
	created.ID = model.NewDeadlineEntryID()
	created.UserID = userID
	created.CreatedAt = time.Now().UTC()

	r.entries[userID][created.ID] = created
	return copyDeadlineEntry(created), nil
}

func (r *deadlineRepository) List(ctx context.Context, userID string) ([]*model.DeadlineEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.entries[userID]
	if !exists {
		return []*model.DeadlineEntry{}, nil
	}

	entries := make([]*model.DeadlineEntry, 0, len(user))
	for _, entry := range user {
		entries = append(entries, copyDeadlineEntry(entry))
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Due.Equal(entries[j].Due) {
			return entries[i].Due.Before(entries[j].Due)
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

func (r *deadlineRepository) Delete(ctx context.Context, userID string, id model.DeadlineEntryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.entries[userID]
	if !exists {
		return goerr.Wrap(ErrNotFound, "deadline entry not found", goerr.V("id", id))
	}

	if _, exists := user[id]; !exists {
		return goerr.Wrap(ErrNotFound, "deadline entry not found", goerr.V("id", id))
	}

	delete(user, id)
	return nil
}
