package core

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/agent/tool"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/logging"
)

// addTimelineEventTool appends a timeline event on the assistant's behalf
type addTimelineEventTool struct {
	repo   interfaces.Repository
	userID string
}

func (t *addTimelineEventTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "add_timeline_event",
		Description: "Voeg een gebeurtenis toe aan de tijdlijn van de gebruiker, zoals een gesprek, waarschuwing of discriminerende opmerking. Gebruik dit wanneer de gebruiker iets vertelt dat gedocumenteerd moet worden.",
		Parameters: map[string]*tool.Parameter{
			"title": {
				Type:        tool.TypeString,
				Description: "Korte titel van de gebeurtenis",
				Required:    true,
			},
			"event_date": {
				Type:        tool.TypeString,
				Description: "Datum van de gebeurtenis in ISO-formaat (YYYY-MM-DD)",
				Required:    true,
			},
			"description": {
				Type:        tool.TypeString,
				Description: "Uitgebreide beschrijving van wat er gebeurde",
			},
			"event_type": {
				Type:        tool.TypeString,
				Description: "Type gebeurtenis",
				Enum:        eventTypeValues(),
			},
			"people_involved": {
				Type:        tool.TypeString,
				Description: "Namen of functies van betrokkenen",
			},
			"evidence_notes": {
				Type:        tool.TypeString,
				Description: "Welk bewijs de gebruiker van deze gebeurtenis heeft",
			},
		},
	}
}

func (t *addTimelineEventTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	title := stringArg(args, "title")
	eventDate, err := model.ParseDate(stringArg(args, "event_date"))
	if err != nil {
		return nil, goerr.Wrap(err, "invalid event date")
	}

	tool.Update(ctx, fmt.Sprintf("Tijdlijn bijwerken: %s", title))

	event := &model.TimelineEvent{
		Title:          title,
		Description:    stringArg(args, "description"),
		EventDate:      eventDate,
		EventType:      types.EventType(stringArg(args, "event_type")).Normalize(),
		PeopleInvolved: stringArg(args, "people_involved"),
		EvidenceNotes:  stringArg(args, "evidence_notes"),
	}

	return persistTimelineEvent(ctx, t.repo, t.userID, event, "timeline_event_added")
}

// addEvidenceTool appends a timeline event tagged as evidence. The event
// date defaults to today because evidence is usually recorded as it is
// collected.
type addEvidenceTool struct {
	repo   interfaces.Repository
	userID string
	now    func() time.Time
}

func (t *addEvidenceTool) Spec() tool.Spec {
	return tool.Spec{
		Name:        "add_evidence",
		Description: "Registreer een bewijsstuk op de tijdlijn van de gebruiker, zoals een e-mail, beoordeling of getuigenverklaring. Gebruik dit wanneer de gebruiker bewijs noemt.",
		Parameters: map[string]*tool.Parameter{
			"title": {
				Type:        tool.TypeString,
				Description: "Korte omschrijving van het bewijsstuk",
				Required:    true,
			},
			"description": {
				Type:        tool.TypeString,
				Description: "Wat het bewijsstuk aantoont",
			},
			"event_date": {
				Type:        tool.TypeString,
				Description: "Datum van het bewijsstuk in ISO-formaat (YYYY-MM-DD); vandaag als die onbekend is",
			},
			"evidence_notes": {
				Type:        tool.TypeString,
				Description: "Waar het bewijsstuk zich bevindt of hoe het bewaard is, bijvoorbeeld een mailbox of map",
			},
		},
	}
}

func (t *addEvidenceTool) Run(ctx context.Context, args map[string]any) (*tool.Result, error) {
	title := stringArg(args, "title")

	eventDate := t.now().UTC().Truncate(24 * time.Hour)
	if dateStr := stringArg(args, "event_date"); dateStr != "" {
		parsed, err := model.ParseDate(dateStr)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid evidence date")
		}
		eventDate = parsed
	}

	tool.Update(ctx, fmt.Sprintf("Bewijs vastleggen: %s", title))

	event := &model.TimelineEvent{
		Title:         title,
		Description:   stringArg(args, "description"),
		EventDate:     eventDate,
		EventType:     types.EventTypeEvidence,
		EvidenceNotes: stringArg(args, "evidence_notes"),
	}

	return persistTimelineEvent(ctx, t.repo, t.userID, event, "evidence_added")
}

// persistTimelineEvent applies the shared best-effort persistence policy:
// no identity or a failed write never raises; the flag and message adapt.
func persistTimelineEvent(ctx context.Context, repo interfaces.Repository, userID string, event *model.TimelineEvent, action string) (*tool.Result, error) {
	result := &tool.Result{
		Action: action,
		Data: map[string]any{
			"title":      event.Title,
			"event_date": model.FormatDate(event.EventDate),
			"event_type": event.EventType.String(),
		},
	}

	if userID == "" {
		result.Message = fmt.Sprintf("Ik heb \"%s\" genoteerd. %s", event.Title, signInNote)
		return result, nil
	}

	created, err := repo.Timeline().Create(ctx, userID, event)
	if err != nil {
		logging.From(ctx).Warn("failed to persist timeline event",
			"title", event.Title, "error", err.Error())
		result.Message = fmt.Sprintf("Ik heb \"%s\" genoteerd. %s", event.Title, saveFailedNote)
		return result, nil
	}

	result.SavedToDB = true
	result.Data["id"] = string(created.ID)
	result.Message = fmt.Sprintf("\"%s\" is toegevoegd aan je tijdlijn.", event.Title)
	return result, nil
}

func eventTypeValues() []string {
	all := types.AllEventTypes()
	values := make([]string, len(all))
	for i, t := range all {
		values[i] = t.String()
	}
	return values
}
