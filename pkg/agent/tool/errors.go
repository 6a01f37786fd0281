package tool

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for tool dispatch
var (
	// ErrUnknownTool is returned when the requested tool name is not in the
	// registry. The orchestrator treats this as a no-op with a fallback
	// message; it never crashes the turn.
	ErrUnknownTool = goerr.New("unknown tool")

	// ErrInvalidArguments is returned when the arguments do not satisfy the
	// tool's declared schema (missing required field, wrong type).
	ErrInvalidArguments = goerr.New("invalid tool arguments")
)
