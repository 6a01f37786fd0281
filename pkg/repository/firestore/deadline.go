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

type deadlineRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDeadlineRepository(client *firestore.Client) *deadlineRepository {
	return &deadlineRepository{client: client}
}

func (r *deadlineRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection(r.collectionPrefix)).Doc(userID).Collection("deadlines")
}

func (r *deadlineRepository) Create(ctx context.Context, userID string, entry *model.DeadlineEntry) (*model.DeadlineEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	created := *entry
	created.ID = model.NewDeadlineEntryID()
	created.UserID = userID
	created.CreatedAt = time.Now().UTC()

	if _, err := r.collection(userID).Doc(string(created.ID)).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create deadline entry", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *deadlineRepository) List(ctx context.Context, userID string) ([]*model.DeadlineEntry, error) {
	iter := r.collection(userID).
		OrderBy("Due", firestore.Asc).
		OrderBy("CreatedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]*model.DeadlineEntry, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list deadline entries", goerr.V("userID", userID))
		}

		var entry model.DeadlineEntry
		if err := docSnap.DataTo(&entry); err != nil {
			return nil, goerr.Wrap(err, "failed to decode deadline entry")
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *deadlineRepository) Delete(ctx context.Context, userID string, id model.DeadlineEntryID) error {
	docSnap, err := r.collection(userID).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "deadline entry not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get deadline entry", goerr.V("id", id))
	}

	if _, err := docSnap.Ref.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete deadline entry", goerr.V("id", id))
	}

	return nil
}
