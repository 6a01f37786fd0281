package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/repository/firestore"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/repository/memory"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/errutil"
)

// timelineEventJSON is the wire shape of a timeline event. Dates are ISO
// calendar dates without a time component.
type timelineEventJSON struct {
	ID             string `json:"id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	EventDate      string `json:"eventDate"`
	EventType      string `json:"eventType,omitempty"`
	PeopleInvolved string `json:"peopleInvolved,omitempty"`
	EvidenceNotes  string `json:"evidenceNotes,omitempty"`
}

func toTimelineEventJSON(e *model.TimelineEvent) *timelineEventJSON {
	return &timelineEventJSON{
		ID:             string(e.ID),
		Title:          e.Title,
		Description:    e.Description,
		EventDate:      model.FormatDate(e.EventDate),
		EventType:      e.EventType.String(),
		PeopleInvolved: e.PeopleInvolved,
		EvidenceNotes:  e.EvidenceNotes,
	}
}

func (j *timelineEventJSON) toModel() (*model.TimelineEvent, error) {
	eventDate, err := model.ParseDate(j.EventDate)
	if err != nil {
		return nil, goerr.Wrap(usecase.ErrInvalidInput, "invalid event date", goerr.V("date", j.EventDate))
	}
	return &model.TimelineEvent{
		ID:             model.TimelineEventID(j.ID),
		Title:          j.Title,
		Description:    j.Description,
		EventDate:      eventDate,
		EventType:      types.EventType(j.EventType).Normalize(),
		PeopleInvolved: j.PeopleInvolved,
		EvidenceNotes:  j.EvidenceNotes,
	}, nil
}

func (s *Server) handleTimelineList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := s.uc.Timeline.List(ctx, userID(r))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	out := make([]*timelineEventJSON, len(events))
	for i, e := range events {
		out[i] = toTimelineEventJSON(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": out})
}

func (s *Server) handleTimelineCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req timelineEventJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrInvalidInput, "malformed timeline event"), http.StatusBadRequest)
		return
	}

	event, err := req.toModel()
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Timeline.Create(ctx, userID(r), event)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(w, http.StatusCreated, toTimelineEventJSON(created))
}

func (s *Server) handleTimelineUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req timelineEventJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrInvalidInput, "malformed timeline event"), http.StatusBadRequest)
		return
	}
	req.ID = chi.URLParam(r, "id")

	event, err := req.toModel()
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	updated, err := s.uc.Timeline.Update(ctx, userID(r), event)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, notFoundAware(err))
		return
	}

	writeJSON(w, http.StatusOK, toTimelineEventJSON(updated))
}

func (s *Server) handleTimelineDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := model.TimelineEventID(chi.URLParam(r, "id"))
	if err := s.uc.Timeline.Delete(ctx, userID(r), id); err != nil {
		errutil.HandleHTTP(ctx, w, err, notFoundAware(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// notFoundAware maps repository not-found errors to 404, falling back to
// the standard taxonomy for everything else.
func notFoundAware(err error) int {
	if errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound) {
		return http.StatusNotFound
	}
	return statusOf(err)
}
