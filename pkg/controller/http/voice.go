package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/errutil"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/safe"
)

// voiceRequest multiplexes the three voice sub-actions on one shape
type voiceRequest struct {
	Action   string                      `json:"action"`
	Audio    string                      `json:"audio,omitempty"` // base64, transcribe
	Text     string                      `json:"text,omitempty"`
	Messages []model.ConversationMessage `json:"messages,omitempty"`
	UserID   string                      `json:"userId,omitempty"`
}

func (s *Server) handleVoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req voiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrInvalidInput, "malformed voice request"), http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "transcribe":
		s.voiceTranscribe(w, r, &req)
	case "chat":
		s.voiceChat(w, r, &req)
	case "speak":
		s.voiceSpeak(w, r, &req)
	default:
		err := goerr.Wrap(usecase.ErrUnsupportedAction, "unknown voice action", goerr.V("action", req.Action))
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	}
}

func (s *Server) voiceTranscribe(w http.ResponseWriter, r *http.Request, req *voiceRequest) {
	ctx := r.Context()

	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(usecase.ErrInvalidInput, "audio is not valid base64"), http.StatusBadRequest)
		return
	}

	text, err := s.uc.Voice.Transcribe(ctx, audio)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func (s *Server) voiceChat(w http.ResponseWriter, r *http.Request, req *voiceRequest) {
	ctx := r.Context()

	uid := req.UserID
	if uid == "" {
		uid = userID(r)
	}

	messages := req.Messages
	if req.Text != "" {
		messages = append(messages, model.ConversationMessage{
			Role:    types.RoleUser,
			Content: req.Text,
		})
	}

	report, err := s.uc.Voice.Chat(ctx, &usecase.TurnInput{
		Messages: messages,
		UserID:   uid,
	})
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) voiceSpeak(w http.ResponseWriter, r *http.Request, req *voiceRequest) {
	ctx := r.Context()

	audio, err := s.uc.Voice.Speak(ctx, req.Text)
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, statusOf(err))
		return
	}
	defer safe.Close(ctx, audio)

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	safe.Copy(ctx, w, audio)
}
