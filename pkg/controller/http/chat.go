package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/errutil"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/safe"
)

type chatRequest struct {
	Messages []model.ConversationMessage `json:"messages"`
	UserID   string                      `json:"userId,omitempty"`
}

// handleChat streams one conversation turn as server-sent events. The
// navigation control chunk, when present, is the first event; tool progress
// messages and text deltas follow; the stream ends with [DONE].
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrInvalidInput, "malformed chat request"), http.StatusBadRequest)
		return
	}

	uid := req.UserID
	if uid == "" {
		uid = userID(r)
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		errutil.HandleHTTP(ctx, w, goerr.New("streaming unsupported"), http.StatusInternalServerError)
		return
	}

	sse := &sseWriter{w: w, flusher: flusher}

	_, err := s.uc.Chat.Converse(ctx, &usecase.TurnInput{
		Messages: req.Messages,
		UserID:   uid,
	}, sse)
	if err != nil {
		if !sse.started {
			// Nothing sent yet: a plain JSON error with a proper status.
			errutil.HandleHTTP(ctx, w, err, statusOf(err))
			return
		}
		// Mid-stream: terminate with an error event.
		sse.writeError(ctx, err)
		return
	}

	sse.writeDone(ctx)
}

// sseWriter implements usecase.StreamWriter over a server-sent-event
// response. Headers are written lazily on the first chunk so pre-stream
// failures can still use a JSON status response.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

var _ usecase.StreamWriter = &sseWriter{}

func (s *sseWriter) begin() {
	if s.started {
		return
	}
	s.w.Header().Set("Content-Type", "text/event-stream")
	s.w.Header().Set("Cache-Control", "no-cache")
	s.w.Header().Set("Connection", "keep-alive")
	s.w.WriteHeader(http.StatusOK)
	s.started = true
}

func (s *sseWriter) WriteNavigate(route string) error {
	return s.writeEvent(map[string]any{
		"action":   "navigate",
		"navigate": route,
	})
}

func (s *sseWriter) WriteProgress(message string) error {
	return s.writeEvent(map[string]any{"progress": message})
}

func (s *sseWriter) WriteText(chunk string) error {
	return s.writeEvent(map[string]any{"text": chunk})
}

func (s *sseWriter) writeEvent(payload any) error {
	s.begin()

	data, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to encode SSE payload")
	}
	if _, err := s.w.Write([]byte("data: " + string(data) + "\n\n")); err != nil {
		return goerr.Wrap(err, "failed to write SSE chunk")
	}
	s.flusher.Flush()
	return nil
}

func (s *sseWriter) writeError(ctx context.Context, err error) {
	data, encErr := json.Marshal(map[string]any{
		"error":  "Er ging iets mis, probeer het opnieuw.",
		"status": statusOf(err),
	})
	if encErr != nil {
		return
	}
	safe.Write(ctx, s.w, []byte("event: error\ndata: "+string(data)+"\n\n"))
	s.flusher.Flush()
}

func (s *sseWriter) writeDone(ctx context.Context) {
	s.begin()
	safe.Write(ctx, s.w, []byte("data: [DONE]\n\n"))
	s.flusher.Flush()
}
