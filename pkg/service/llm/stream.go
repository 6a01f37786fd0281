package llm

import (
	"errors"
	"io"

	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
	"github.com/sashabaranov/go-openai"
)

// textStream adapts an open chat-completion stream to the TextStream
// interface. pending holds a chunk that was already consumed while sniffing
// the response mode.
type textStream struct {
	stream  *openai.ChatCompletionStream
	pending string
}

var _ interfaces.TextStream = &textStream{}

func (s *textStream) Recv() (string, error) {
	if s.pending != "" {
		chunk := s.pending
		s.pending = ""
		return chunk, nil
	}

	for {
		resp, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", classifyError(err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if content := resp.Choices[0].Delta.Content; content != "" {
			return content, nil
		}
	}
}

func (s *textStream) Close() error {
	return s.stream.Close()
}

// emptyStream is the reply stream of a decision that produced neither tool
// calls nor content.
type emptyStream struct{}

func (emptyStream) Recv() (string, error) { return "", io.EOF }
func (emptyStream) Close() error          { return nil }
