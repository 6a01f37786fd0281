package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/logging"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/utils/safe"
)

// minTranscriptLength rejects accidental submissions of empty conversations
const minTranscriptLength = 10

// TranscriptRequest is a conversation transcript offered for forwarding,
// with optional contact details for a follow-up.
type TranscriptRequest struct {
	Transcript string `json:"transcript"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
}

// TranscriptUseCase forwards conversation transcripts to a configured
// webhook (e.g. an intake mailbox automation). The webhook is an external
// collaborator; absence is reported explicitly, not silently dropped.
type TranscriptUseCase struct {
	webhookURL string
	client     *http.Client
}

func NewTranscriptUseCase(webhookURL string) *TranscriptUseCase {
	return &TranscriptUseCase{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Forward validates and posts the transcript to the webhook
func (uc *TranscriptUseCase) Forward(ctx context.Context, req *TranscriptRequest) error {
	if req == nil || len(req.Transcript) < minTranscriptLength {
		return goerr.Wrap(ErrInvalidInput, "transcript too short",
			goerr.V("minLength", minTranscriptLength))
	}
	if uc.webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return goerr.Wrap(err, "failed to encode transcript")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, uc.webhookURL, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to build webhook request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := uc.client.Do(httpReq)
	if err != nil {
		return goerr.Wrap(err, "failed to forward transcript")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode >= 300 {
		return goerr.New("transcript webhook rejected the request",
			goerr.V("status", resp.StatusCode))
	}

	logging.From(ctx).Info("transcript forwarded", "status", resp.StatusCode)
	return nil
}
