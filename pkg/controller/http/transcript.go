package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/errutil"
)

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req usecase.TranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrInvalidInput, "malformed transcript request"), http.StatusBadRequest)
		return
	}

	if err := s.uc.Transcript.Forward(ctx, &req); err != nil {
		status := statusOf(err)
		errutil.Handle(ctx, err, "transcript forwarding failed")
		writeJSON(w, status, map[string]any{
			"ok":     false,
			"error":  "transcript niet doorgestuurd",
			"status": status,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
