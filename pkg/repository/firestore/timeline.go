package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type timelineRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTimelineRepository(client *firestore.Client) *timelineRepository {
	return &timelineRepository{client: client}
}

func (r *timelineRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection(r.collectionPrefix)).Doc(userID).Collection("timeline")
}

func (r *timelineRepository) Create(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := *event
	created.ID = model.NewTimelineEventID()
	created.UserID = userID
	created.CreatedAt = now
	created.UpdatedAt = now

	if _, err := r.collection(userID).Doc(string(created.ID)).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create timeline event", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *timelineRepository) Get(ctx context.Context, userID string, id model.TimelineEventID) (*model.TimelineEvent, error) {
	docSnap, err := r.collection(userID).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "timeline event not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get timeline event", goerr.V("id", id))
	}

	var event model.TimelineEvent
	if err := docSnap.DataTo(&event); err != nil {
		return nil, goerr.Wrap(err, "failed to decode timeline event", goerr.V("id", id))
	}

	return &event, nil
}

func (r *timelineRepository) List(ctx context.Context, userID string) ([]*model.TimelineEvent, error) {
	iter := r.collection(userID).
		OrderBy("EventDate", firestore.Desc).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	events := make([]*model.TimelineEvent, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list timeline events", goerr.V("userID", userID))
		}

		var event model.TimelineEvent
		if err := docSnap.DataTo(&event); err != nil {
			return nil, goerr.Wrap(err, "failed to decode timeline event")
		}
		events = append(events, &event)
	}

	return events, nil
}

func (r *timelineRepository) Update(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, userID, event.ID)
	if err != nil {
		return nil, err
	}

	updated := *event
	updated.UserID = userID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := r.collection(userID).Doc(string(updated.ID)).Set(ctx, &updated); err != nil {
		return nil, goerr.Wrap(err, "failed to update timeline event", goerr.V("id", updated.ID))
	}

	return &updated, nil
}

func (r *timelineRepository) Delete(ctx context.Context, userID string, id model.TimelineEventID) error {
	if _, err := r.Get(ctx, userID, id); err != nil {
		return err
	}

	if _, err := r.collection(userID).Doc(string(id)).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete timeline event", goerr.V("id", id))
	}

	return nil
}
