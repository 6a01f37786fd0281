package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
)

// TimelineUseCase is the direct-entry path for timeline events: the UI's
// own list and edit operations, next to the assistant's appends.
type TimelineUseCase struct {
	repo interfaces.Repository
}

func NewTimelineUseCase(repo interfaces.Repository) *TimelineUseCase {
	return &TimelineUseCase{repo: repo}
}

func (uc *TimelineUseCase) List(ctx context.Context, userID string) ([]*model.TimelineEvent, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user ID is required")
	}
	return uc.repo.Timeline().List(ctx, userID)
}

func (uc *TimelineUseCase) Create(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user ID is required")
	}
	if err := event.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid timeline event", goerr.V("cause", err.Error()))
	}
	event.EventType = event.EventType.Normalize()
	return uc.repo.Timeline().Create(ctx, userID, event)
}

func (uc *TimelineUseCase) Update(ctx context.Context, userID string, event *model.TimelineEvent) (*model.TimelineEvent, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user ID is required")
	}
	if event.ID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "event ID is required")
	}
	if err := event.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid timeline event", goerr.V("cause", err.Error()))
	}
	event.EventType = event.EventType.Normalize()
	return uc.repo.Timeline().Update(ctx, userID, event)
}

func (uc *TimelineUseCase) Delete(ctx context.Context, userID string, id model.TimelineEventID) error {
	if userID == "" {
		return goerr.Wrap(ErrInvalidInput, "user ID is required")
	}
	if id == "" {
		return goerr.Wrap(ErrInvalidInput, "event ID is required")
	}
	return uc.repo.Timeline().Delete(ctx, userID, id)
}
