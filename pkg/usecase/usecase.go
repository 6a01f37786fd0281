package usecase

import (
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/interfaces"
)

// UseCases bundles the application's use cases for the HTTP controller
type UseCases struct {
	Chat       *ChatUseCase
	Voice      *VoiceUseCase
	Timeline   *TimelineUseCase
	Deadline   *DeadlineUseCase
	Transcript *TranscriptUseCase
}

type Option func(*options)

type options struct {
	chatOpts   []ChatOption
	webhookURL string
}

func WithChatOptions(opts ...ChatOption) Option {
	return func(o *options) {
		o.chatOpts = append(o.chatOpts, opts...)
	}
}

func WithTranscriptWebhook(url string) Option {
	return func(o *options) {
		o.webhookURL = url
	}
}

func New(repo interfaces.Repository, llm interfaces.LLMClient, speech interfaces.SpeechClient, opts ...Option) *UseCases {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	chat := NewChatUseCase(repo, llm, o.chatOpts...)

	return &UseCases{
		Chat:       chat,
		Voice:      NewVoiceUseCase(chat, speech),
		Timeline:   NewTimelineUseCase(repo),
		Deadline:   NewDeadlineUseCase(repo),
		Transcript: NewTranscriptUseCase(o.webhookURL),
	}
}
