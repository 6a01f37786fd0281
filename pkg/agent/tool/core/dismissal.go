package core

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/service/deadline"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/logging"
)

// saveDismissalInfoTool records the dismissal anchor date, computes the
// derived deadlines and persists both when a user identity is present.
// Repeated calls with the same date create separate rows: the timeline is an
// append-only log and corrections are new entries.
type saveDismissalInfoTool struct {
	repo   interfaces.Repository
	userID string
}

func (t *saveDismissalInfoTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "save_dismissal_info",
		Description: "Sla de ontslagdatum en eventueel de ontslagreden van de gebruiker op en bereken de juridische deadlines die daaruit volgen. Gebruik dit zodra de gebruiker vertelt wanneer die is ontslagen.",
		Parameters: map[string]*tool.Parameter{
			"dismissal_date": {
				Type:        tool.TypeString,
				Description: "De ontslagdatum in ISO-formaat (YYYY-MM-DD)",
				Required:    true,
			},
			"reason": {
				Type:        tool.TypeString,
				Description: "De reden van het ontslag zoals de gebruiker die beschrijft",
			},
		},
	}
}

func (t *saveDismissalInfoTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	dateStr := stringArg(args, "dismissal_date")
	reason := stringArg(args, "reason")

	tool.Update(ctx, "Ontslaggegevens verwerken...")

	deadlines, err := deadline.Calculate(dateStr)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot compute deadlines for dismissal date")
	}
	anchor, err := model.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	result := &tool.Result{
		Action: "dismissal_saved",
		Data: map[string]any{
			"dismissal_date": dateStr,
			"deadlines":      deadlinesToMaps(deadlines),
		},
	}

	if t.userID == "" {
		result.Message = fmt.Sprintf("Ik heb de deadlines voor je ontslag op %s berekend. %s", dateStr, signInNote)
		return result, nil
	}

	saved := true
	event := &model.TimelineEvent{
		Title:       "Ontslag",
		Description: reason,
		EventDate:   anchor,
		EventType:   types.EventTypeDismissal,
	}
	if _, err := t.repo.Timeline().Create(ctx, t.userID, event); err != nil {
		logging.From(ctx).Warn("failed to persist dismissal event", "error", err.Error())
		saved = false
	}

	for _, d := range deadlines {
		entry := &model.DeadlineEntry{
			Kind:    d.Kind,
			Title:   d.Title,
			Due:     d.Date,
			Urgency: d.Urgency,
		}
		if _, err := t.repo.Deadline().Create(ctx, t.userID, entry); err != nil {
			logging.From(ctx).Warn("failed to persist deadline entry",
				"kind", d.Kind.String(), "error", err.Error())
			saved = false
		}
	}

	result.SavedToDB = saved
	if saved {
		result.Message = fmt.Sprintf("Je ontslagdatum (%s) is opgeslagen op je tijdlijn en je deadlines zijn berekend.", dateStr)
	} else {
		result.Message = fmt.Sprintf("Ik heb de deadlines voor je ontslag op %s berekend. %s", dateStr, saveFailedNote)
	}
	return result, nil
}

func deadlinesToMaps(deadlines []*model.Deadline) []map[string]any {
	items := make([]map[string]any, len(deadlines))
	for i, d := range deadlines {
		items[i] = map[string]any{
			"kind":    d.Kind.String(),
			"title":   d.Title,
			"date":    model.FormatDate(d.Date),
			"urgency": d.Urgency.String(),
		}
	}
	return items
}
