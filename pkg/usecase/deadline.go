package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/service/deadline"
)

// DeadlineUseCase serves the deadline overview: persisted entries for a
// user and pure computation for the UI's calculator view.
type DeadlineUseCase struct {
	repo interfaces.Repository
}

func NewDeadlineUseCase(repo interfaces.Repository) *DeadlineUseCase {
	return &DeadlineUseCase{repo: repo}
}

// List retrieves the user's persisted entries, optionally restricted to one
// deadline kind. An unknown kind is a caller mistake, not an empty result.
func (uc *DeadlineUseCase) List(ctx context.Context, userID string, kind string) ([]*model.DeadlineEntry, error) {
	if userID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "user ID is required")
	}

	entries, err := uc.repo.Deadline().List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return entries, nil
	}

	parsed, err := types.ParseDeadlineKind(kind)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown deadline kind", goerr.V("kind", kind))
	}

	filtered := make([]*model.DeadlineEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Kind == parsed {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// Calculate computes the deadlines for an anchor date without persisting
func (uc *DeadlineUseCase) Calculate(ctx context.Context, anchorDate string) ([]*model.Deadline, error) {
	deadlines, err := deadline.Calculate(anchorDate)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid anchor date", goerr.V("date", anchorDate))
	}
	return deadlines, nil
}
