package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/repository/firestore"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/repository/memory"
)

const testUserID = "test-user"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func runTimelineRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
			Title:     "Ontslaggesprek",
			EventDate: date(2025, 1, 15),
			EventType: types.EventTypeConversation,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, string(created.ID) != "").Equal(true)
		gt.Value(t, created.UserID).Equal(testUserID)
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Bool(t, created.UpdatedAt.IsZero()).False()
	})

	t.Run("Create rejects missing title", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
			EventDate: date(2025, 1, 15),
		})
		gt.Error(t, err)
		gt.Value(t, errors.Is(err, model.ErrTitleRequired)).Equal(true)
	})

	t.Run("Create rejects missing event date", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
			Title: "Zonder datum",
		})
		gt.Error(t, err)
		gt.Value(t, errors.Is(err, model.ErrEventDateRequired)).Equal(true)
	})

	t.Run("Get retrieves existing event", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
			Title:          "Officiële waarschuwing",
			Description:    "Schriftelijke waarschuwing ontvangen",
			EventDate:      date(2025, 2, 1),
			EventType:      types.EventTypeWarning,
			PeopleInvolved: "Teamleider",
		})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Timeline().Get(ctx, testUserID, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Title).Equal("Officiële waarschuwing")
		gt.Value(t, retrieved.Description).Equal("Schriftelijke waarschuwing ontvangen")
		gt.Value(t, retrieved.EventType).Equal(types.EventTypeWarning)
		gt.Value(t, retrieved.PeopleInvolved).Equal("Teamleider")
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Timeline().Get(ctx, testUserID, model.NewTimelineEventID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("List returns events newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, d := range []time.Time{date(2025, 1, 10), date(2025, 3, 5), date(2025, 2, 1)} {
			_, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
				Title:     "Gebeurtenis",
				EventDate: d,
			})
			gt.NoError(t, err).Required()
		}

		events, err := repo.Timeline().List(ctx, testUserID)
		gt.NoError(t, err).Required()
		gt.Array(t, events).Length(3)
		gt.Value(t, events[0].EventDate).Equal(date(2025, 3, 5))
		gt.Value(t, events[1].EventDate).Equal(date(2025, 2, 1))
		gt.Value(t, events[2].EventDate).Equal(date(2025, 1, 10))
	})

	t.Run("List is scoped per user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Timeline().Create(ctx, "user-a", &model.TimelineEvent{
			Title:     "Van A",
			EventDate: date(2025, 1, 1),
		})
		gt.NoError(t, err).Required()

		events, err := repo.Timeline().List(ctx, "user-b")
		gt.NoError(t, err).Required()
		gt.Array(t, events).Length(0)
	})

	t.Run("repeated identical creates produce separate rows", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		event := &model.TimelineEvent{
			Title:     "Ontslag",
			EventDate: date(2025, 1, 15),
			EventType: types.EventTypeDismissal,
		}
		first, err := repo.Timeline().Create(ctx, testUserID, event)
		gt.NoError(t, err).Required()
		second, err := repo.Timeline().Create(ctx, testUserID, event)
		gt.NoError(t, err).Required()

		gt.Value(t, first.ID != second.ID).Equal(true)

		events, err := repo.Timeline().List(ctx, testUserID)
		gt.NoError(t, err).Required()
		gt.Array(t, events).Length(2)
	})

	t.Run("Update replaces fields and preserves CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
			Title:     "Gesprek",
			EventDate: date(2025, 2, 14),
		})
		gt.NoError(t, err).Required()

		created.Title = "Gesprek met HR"
		created.Description = "Ging over mijn functioneren"
		updated, err := repo.Timeline().Update(ctx, testUserID, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Title).Equal("Gesprek met HR")
		gt.Value(t, updated.Description).Equal("Ging over mijn functioneren")
		gt.Value(t, updated.CreatedAt).Equal(created.CreatedAt)
	})

	t.Run("Update of unknown event fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Timeline().Update(ctx, testUserID, &model.TimelineEvent{
			ID:        model.NewTimelineEventID(),
			Title:     "Spook",
			EventDate: date(2025, 1, 1),
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})

	t.Run("Delete removes the event", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Timeline().Create(ctx, testUserID, &model.TimelineEvent{
			Title:     "Te verwijderen",
			EventDate: date(2025, 1, 1),
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Timeline().Delete(ctx, testUserID, created.ID))

		_, err = repo.Timeline().Get(ctx, testUserID, created.ID)
		gt.Error(t, err)
	})

	t.Run("Delete of unknown event fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.Timeline().Delete(ctx, testUserID, model.NewTimelineEventID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound)).True()
	})
}

func TestMemoryTimelineRepository(t *testing.T) {
	runTimelineRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreTimelineRepository(t *testing.T) {
	runTimelineRepositoryTest(t, newFirestoreRepository)
}
