package http_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	controller "github.com/ontslagwijzer/ontslagwijzer/pkg/controller/http"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/repository/memory"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/usecase"
)

// ----- mock LLM client -----

type mockLLM struct {
	decideFn  func(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error)
	narrateFn func(ctx context.Context, req *interfaces.CompletionRequest) (interfaces.TextStream, error)
}

func (m *mockLLM) Decide(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
	return m.decideFn(ctx, req)
}

func (m *mockLLM) Narrate(ctx context.Context, req *interfaces.CompletionRequest) (interfaces.TextStream, error) {
	if m.narrateFn != nil {
		return m.narrateFn(ctx, req)
	}
	return newSliceStream("Gedaan."), nil
}

type sliceStream struct {
	chunks []string
}

func newSliceStream(chunks ...string) *sliceStream {
	return &sliceStream{chunks: chunks}
}

func (s *sliceStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		return "", io.EOF
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

func (s *sliceStream) Close() error { return nil }

// ----- mock speech client -----

type mockSpeech struct{}

func (mockSpeech) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	return "ik ben ontslagen", nil
}

func (mockSpeech) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("mp3-bytes")), nil
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func newServer(llm interfaces.LLMClient, opts ...usecase.Option) *controller.Server {
	opts = append(opts, usecase.WithChatOptions(usecase.WithNow(fixedNow)))
	uc := usecase.New(memory.New(), llm, mockSpeech{}, opts...)
	return controller.New(uc)
}

func postJSON(srv *controller.Server, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func chatBody(content string) map[string]any {
	return map[string]any{
		"messages": []map[string]string{
			{"role": "user", "content": content},
		},
		"userId": "user-1",
	}
}

func TestChatEndpoint(t *testing.T) {
	t.Run("streams navigation before text", func(t *testing.T) {
		llm := &mockLLM{
			decideFn: func(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
				return &interfaces.Decision{ToolCalls: []interfaces.ToolCall{
					{ID: "call_1", Name: "navigate_to_page", Arguments: map[string]any{"page": "tijdlijn"}},
				}}, nil
			},
			narrateFn: func(ctx context.Context, req *interfaces.CompletionRequest) (interfaces.TextStream, error) {
				return newSliceStream("Hier is je tijdlijn."), nil
			},
		}
		rec := postJSON(newServer(llm), "/api/chat", chatBody("Laat mijn tijdlijn zien"), nil)

		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("text/event-stream")

		lines := []string{}
		for _, line := range strings.Split(rec.Body.String(), "\n") {
			if strings.HasPrefix(line, "data: ") {
				lines = append(lines, strings.TrimPrefix(line, "data: "))
			}
		}
		gt.Array(t, lines).Length(4).Required()
		gt.Value(t, strings.Contains(lines[0], `"navigate":"/tijdlijn"`)).Equal(true)
		gt.Value(t, strings.Contains(lines[1], `"progress":"Navigeren naar /tijdlijn"`)).Equal(true)
		gt.Value(t, strings.Contains(lines[2], `"text":`)).Equal(true)
		gt.Value(t, lines[3]).Equal("[DONE]")
	})

	t.Run("direct reply has no control chunk", func(t *testing.T) {
		llm := &mockLLM{
			decideFn: func(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
				return &interfaces.Decision{Reply: newSliceStream("Hallo!")}, nil
			},
		}
		rec := postJSON(newServer(llm), "/api/chat", chatBody("Hoi"), nil)

		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, strings.Contains(rec.Body.String(), "navigate")).Equal(false)
		gt.Value(t, strings.Contains(rec.Body.String(), "Hallo!")).Equal(true)
	})

	t.Run("rate limit before streaming yields 429", func(t *testing.T) {
		llm := &mockLLM{
			decideFn: func(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
				return nil, model.ErrRateLimited
			},
		}
		rec := postJSON(newServer(llm), "/api/chat", chatBody("Hoi"), nil)

		gt.Value(t, rec.Code).Equal(http.StatusTooManyRequests)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Value(t, resp["status"]).Equal(float64(http.StatusTooManyRequests))
	})

	t.Run("upstream failure yields 502", func(t *testing.T) {
		llm := &mockLLM{
			decideFn: func(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
				return nil, model.ErrUpstream
			},
		}
		rec := postJSON(newServer(llm), "/api/chat", chatBody("Hoi"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadGateway)
	})

	t.Run("malformed body yields 400", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("empty history yields 400", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/chat", map[string]any{"messages": []any{}}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestVoiceEndpoint(t *testing.T) {
	t.Run("unknown action yields 400", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/voice", map[string]any{"action": "sing"}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("transcribe returns text", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/voice", map[string]any{
			"action": "transcribe",
			"audio":  base64.StdEncoding.EncodeToString([]byte("webm-audio")),
		}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Value(t, resp["text"]).Equal("ik ben ontslagen")
	})

	t.Run("transcribe rejects invalid base64", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/voice", map[string]any{
			"action": "transcribe",
			"audio":  "!!not-base64!!",
		}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("chat returns a JSON report", func(t *testing.T) {
		llm := &mockLLM{
			decideFn: func(ctx context.Context, req *interfaces.CompletionRequest) (*interfaces.Decision, error) {
				return &interfaces.Decision{ToolCalls: []interfaces.ToolCall{
					{ID: "call_1", Name: "navigate_to_page", Arguments: map[string]any{"page": "deadlines"}},
				}}, nil
			},
			narrateFn: func(ctx context.Context, req *interfaces.CompletionRequest) (interfaces.TextStream, error) {
				return newSliceStream("Hier is je overzicht."), nil
			},
		}
		rec := postJSON(newServer(llm), "/api/voice", map[string]any{
			"action": "chat",
			"text":   "Laat mijn deadlines zien",
			"userId": "user-1",
		}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp usecase.TurnReport
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Value(t, resp.Text).Equal("Hier is je overzicht.")
		gt.Value(t, resp.Navigate).Equal("/deadlines")
		gt.Array(t, resp.Progress).Length(1)
		gt.Array(t, resp.ToolResults).Length(1)
	})

	t.Run("speak returns an audio stream", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/voice", map[string]any{
			"action": "speak",
			"text":   "Je hebt nog drie weken.",
		}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Value(t, rec.Header().Get("Content-Type")).Equal("audio/mpeg")
		gt.Value(t, rec.Body.String()).Equal("mp3-bytes")
	})
}

func TestTimelineEndpoints(t *testing.T) {
	header := map[string]string{"X-User-ID": "user-1"}

	t.Run("full CRUD cycle", func(t *testing.T) {
		srv := newServer(&mockLLM{})

		rec := postJSON(srv, "/api/timeline", map[string]any{
			"title":     "Gesprek met HR",
			"eventDate": "2025-02-14",
			"eventType": "conversation",
		}, header)
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		var created map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		id := created["id"].(string)
		gt.Value(t, id != "").Equal(true)

		req := httptest.NewRequest(http.MethodGet, "/api/timeline", nil)
		req.Header.Set("X-User-ID", "user-1")
		rec2 := httptest.NewRecorder()
		srv.ServeHTTP(rec2, req)
		gt.Value(t, rec2.Code).Equal(http.StatusOK)
		gt.Value(t, strings.Contains(rec2.Body.String(), "Gesprek met HR")).Equal(true)

		data, _ := json.Marshal(map[string]any{
			"title":     "Gesprek met HR en teamleider",
			"eventDate": "2025-02-14",
		})
		putReq := httptest.NewRequest(http.MethodPut, "/api/timeline/"+id, bytes.NewReader(data))
		putReq.Header.Set("X-User-ID", "user-1")
		rec3 := httptest.NewRecorder()
		srv.ServeHTTP(rec3, putReq)
		gt.Value(t, rec3.Code).Equal(http.StatusOK)

		delReq := httptest.NewRequest(http.MethodDelete, "/api/timeline/"+id, nil)
		delReq.Header.Set("X-User-ID", "user-1")
		rec4 := httptest.NewRecorder()
		srv.ServeHTTP(rec4, delReq)
		gt.Value(t, rec4.Code).Equal(http.StatusNoContent)
	})

	t.Run("missing identity yields 400", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		req := httptest.NewRequest(http.MethodGet, "/api/timeline", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("updating an unknown event yields 404", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		data, _ := json.Marshal(map[string]any{"title": "X", "eventDate": "2025-01-01"})
		req := httptest.NewRequest(http.MethodPut, "/api/timeline/ontbrekend-id", bytes.NewReader(data))
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestDeadlineEndpoints(t *testing.T) {
	t.Run("calculate returns the five deadlines", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		req := httptest.NewRequest(http.MethodGet, "/api/deadlines/calculate?date=2025-01-15", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Deadlines []struct {
				Kind string `json:"kind"`
				Date string `json:"date"`
			} `json:"deadlines"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Array(t, resp.Deadlines).Length(5).Required()
		gt.Value(t, resp.Deadlines[0].Kind).Equal("ww_application")
		gt.Value(t, resp.Deadlines[0].Date).Equal("2025-01-22")
		gt.Value(t, resp.Deadlines[1].Date).Equal("2025-02-26")
	})

	t.Run("invalid date yields 400", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		req := httptest.NewRequest(http.MethodGet, "/api/deadlines/calculate?date=morgen", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("list requires identity", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		req := httptest.NewRequest(http.MethodGet, "/api/deadlines", nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("list rejects an unknown kind filter", func(t *testing.T) {
		srv := newServer(&mockLLM{})
		req := httptest.NewRequest(http.MethodGet, "/api/deadlines?kind=vakantiegeld", nil)
		req.Header.Set("X-User-ID", "user-1")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestTranscriptEndpoint(t *testing.T) {
	t.Run("short transcript yields 400 with ok=false", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/transcript", map[string]any{"transcript": "kort"}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Value(t, resp["ok"]).Equal(false)
	})

	t.Run("missing webhook yields 503", func(t *testing.T) {
		rec := postJSON(newServer(&mockLLM{}), "/api/transcript", map[string]any{
			"transcript": "gebruiker: dit is een volledig gesprek",
		}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusServiceUnavailable)
	})

	t.Run("configured webhook forwards and returns ok", func(t *testing.T) {
		webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer webhook.Close()

		srv := newServer(&mockLLM{}, usecase.WithTranscriptWebhook(webhook.URL))
		rec := postJSON(srv, "/api/transcript", map[string]any{
			"transcript": "gebruiker: dit is een volledig gesprek",
		}, nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Value(t, resp["ok"]).Equal(true)
	})
}
