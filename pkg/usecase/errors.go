package usecase

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidInput is returned for malformed requests: empty message
	// history, missing text, undecodable payloads.
	ErrInvalidInput = goerr.New("invalid input")

	// ErrUnsupportedAction is returned for an unknown action on the
	// multiplexed voice endpoint. There is no reasonable default.
	ErrUnsupportedAction = goerr.New("unsupported action")

	// ErrWebhookNotConfigured is returned when transcript forwarding is
	// requested but no webhook URL is configured.
	ErrWebhookNotConfigured = goerr.New("transcript webhook not configured")
)
