package http

import (
	"net/http"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/errutil"
)

type deadlineJSON struct {
	ID      string `json:"id,omitempty"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Urgency string `json:"urgency"`
}

func (s *Server) handleDeadlineList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := s.uc.Deadline.List(ctx, userID(r), r.URL.Query().Get("kind"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	out := make([]*deadlineJSON, len(entries))
	for i, e := range entries {
		out[i] = &deadlineJSON{
			ID:      string(e.ID),
			Kind:    e.Kind.String(),
			Title:   e.Title,
			Date:    model.FormatDate(e.Due),
			Urgency: e.Urgency.String(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"deadlines": out})
}

func (s *Server) handleDeadlineCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deadlines, err := s.uc.Deadline.Calculate(ctx, r.URL.Query().Get("date"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	out := make([]*deadlineJSON, len(deadlines))
	for i, d := range deadlines {
		out[i] = &deadlineJSON{
			Kind:    d.Kind.String(),
			Title:   d.Title,
			Date:    model.FormatDate(d.Date),
			Urgency: d.Urgency.String(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"deadlines": out})
}
