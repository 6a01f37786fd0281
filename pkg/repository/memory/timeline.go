package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
)

type timelineRepository struct {
	mu     sync.RWMutex
	events map[string]map[model.TimelineEventID]*model.TimelineEvent
}

func newTimelineRepository() *timelineRepository {
	return &timelineRepository{
		events: make(map[string]map[model.TimelineEventID]*model.TimelineEvent),
	}
}

func (r *timelineRepository) ensureUser(userID string) {
	if _, exists := r.events[userID]; !exists {
		r.events[userID] = make(map[model.TimelineEventID]*model.TimelineEvent)
	}
}

// copyTimelineEvent creates a deep copy of a timeline event
func copyTimelineEvent(e *model.TimelineEvent) *model.TimelineEvent {
	copied := *e
	return &copied
}

func (r *timelineRepository) Create(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureUser(userID)

	now := time.Now().UTC()
	created := copyTimelineEvent(event)
	created.ID = model.NewTimelineEventID()
	created.UserID = userID
	created.CreatedAt = now
	created.UpdatedAt = now

	r.events[userID][created.ID] = created
	return copyTimelineEvent(created), nil
}

func (r *timelineRepository) Get(ctx context.Context, userID string, id model.TimelineEventID) (*model.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.events[userID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
	}

	event, exists := user[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
	}

	return copyTimelineEvent(event), nil
}

func (r *timelineRepository) List(ctx context.Context, userID string) ([]*model.TimelineEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.events[userID]
	if !exists {
		return []*model.TimelineEvent{}, nil
	}

	events := make([]*model.TimelineEvent, 0, len(user))
	for _, event := range user {
		events = append(events, copyTimelineEvent(event))
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].EventDate.Equal(events[j].EventDate) {
			return events[i].EventDate.After(events[j].EventDate)
		}
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	return events, nil
}

func (r *timelineRepository) Update(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.events[userID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", event.ID))
	}

	existing, exists := user[event.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", event.ID))
	}

	updated := copyTimelineEvent(event)
	updated.UserID = userID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	user[updated.ID] = updated
	return copyTimelineEvent(updated), nil
}

func (r *timelineRepository) Delete(ctx context.Context, userID string, id model.TimelineEventID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.events[userID]
	if !exists {
		return goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
	}

	if _, exists := user[id]; !exists {
		return goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
	}

	delete(user, id)
	return nil
}
