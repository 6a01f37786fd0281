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

// calculateDeadlinesTool computes deadlines without persisting anything.
// It is the read-only counterpart of save_dismissal_info.
type calculateDeadlinesTool struct{}

func (t *calculateDeadlinesTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "calculate_deadlines",
		Description: "Bereken de juridische deadlines die volgen uit een ontslagdatum, zonder iets op te slaan. Gebruik dit wanneer de gebruiker alleen wil weten welke termijnen er lopen.",
		Parameters: map[string]*tool.Parameter{
			"dismissal_date": {
				Type:        tool.TypeString,
				Description: "De ontslagdatum in ISO-formaat (YYYY-MM-DD)",
				Required:    true,
			},
		},
	}
}

func (t *calculateDeadlinesTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	dateStr := stringArg(args, "dismissal_date")

	tool.Update(ctx, "Deadlines berekenen...")

	deadlines, err := deadline.Calculate(dateStr)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot compute deadlines")
	}

	return &tool.Result{
		Action:  "deadlines_calculated",
		Message: fmt.Sprintf("Ik heb de %d deadlines berekend die horen bij een ontslag op %s.", len(deadlines), dateStr),
		Data: map[string]any{
			"dismissal_date": dateStr,
			"deadlines":      deadlinesToMaps(deadlines),
		},
	}, nil
}

// setReminderTool persists a reminder-style deadline entry
type setReminderTool struct {
	repo   interfaces.Repository
	userID string
}

func (t *setReminderTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "set_reminder",
		Description: "Zet een herinnering voor de gebruiker, bijvoorbeeld voor een afspraak met een jurist of het versturen van een bezwaarschrift.",
		Parameters: map[string]*tool.Parameter{
			"title": {
				Type:        tool.TypeString,
				Description: "Waar de herinnering over gaat",
				Required:    true,
			},
			"reminder_date": {
				Type:        tool.TypeString,
				Description: "Datum van de herinnering in ISO-formaat (YYYY-MM-DD)",
				Required:    true,
			},
			"reminder_type": {
				Type:        tool.TypeString,
				Description: "Soort herinnering",
				Enum:        []string{"deadline", "afspraak", "taak"},
			},
			"urgency": {
				Type:        tool.TypeString,
				Description: "Hoe dringend de herinnering is",
				Enum:        urgencyValues(),
			},
		},
	}
}

func (t *setReminderTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	title := stringArg(args, "title")
	due, err := model.ParseDate(stringArg(args, "reminder_date"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid reminder date")
	}

	tool.Update(ctx, fmt.Sprintf("Herinnering instellen: %s", title))

	result := &tool.Result{
		Action: "reminder_set",
		Data: map[string]any{
			"title":         title,
			"reminder_date": model.FormatDate(due),
		},
	}

	if t.userID == "" {
		result.Message = fmt.Sprintf("Ik heb de herinnering \"%s\" voor %s genoteerd. %s", title, model.FormatDate(due), signInNote)
		return result, nil
	}

	// Enum membership is advisory: an unrecognized urgency degrades to
	// normal instead of failing the call.
	urgency, err := types.ParseUrgency(stringArg(args, "urgency"))
	if err != nil {
		urgency = types.UrgencyNormal
	}

	entry := &model.DeadlineEntry{
		Kind:    types.DeadlineKindReminder,
		Title:   title,
		Due:     due,
		Urgency: urgency,
	}
	created, err := t.repo.Deadline().Create(ctx, t.userID, entry)
	if err != nil {
		logging.From(ctx).Warn("failed to persist reminder", "title", title, "error", err.Error())
		result.Message = fmt.Sprintf("Ik heb de herinnering \"%s\" genoteerd. %s", title, saveFailedNote)
		return result, nil
	}

	result.SavedToDB = true
	result.Data["id"] = string(created.ID)
	result.Message = fmt.Sprintf("Herinnering \"%s\" staat voor %s.", title, model.FormatDate(due))
	return result, nil
}

func urgencyValues() []string {
	all := types.AllUrgencies()
	values := make([]string, len(all))
	for i, u := range all {
		values[i] = u.String()
	}
	return values
}
