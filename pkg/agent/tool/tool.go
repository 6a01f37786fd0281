package tool

import "context"

// ParameterType is the primitive type of a tool parameter
type ParameterType string

const (
	TypeString  ParameterType = "string"
	TypeInteger ParameterType = "integer"
	TypeNumber  ParameterType = "number"
	TypeBoolean ParameterType = "boolean"
)

// Parameter declares one tool argument. Enum lists the allowed values where
// applicable; enum membership is advisory (the owning tool defines the
// fallback for out-of-set values), while presence and type are enforced
// strictly before dispatch.
type Parameter struct {
	Type        ParameterType
	Description string
	Required    bool
	Enum        []string
}

// Spec is the declarative catalog entry for a tool. It is presented verbatim
// to the language model as an available function on every conversation turn.
type Spec struct {
	Name        string
	Description string
	Parameters  map[string]*Parameter
}

// Result is the ephemeral outcome of a tool execution. It is folded into the
// follow-up model prompt and, where relevant, into the outgoing stream.
type Result struct {
	// Action tags the kind of outcome (e.g. "dismissal_saved", "navigate")
	Action string `json:"action"`
	// Message is a human-readable fragment describing what happened
	Message string `json:"message"`
	// SavedToDB reports whether a persistence write succeeded. False for
	// guest conversations and for swallowed write failures.
	SavedToDB bool `json:"saved_to_db"`
	// Navigate is a client route path when the tool requests navigation
	Navigate string `json:"navigate,omitempty"`
	// Data carries tool-specific payload (computed deadlines, guidance, ...)
	Data map[string]any `json:"data,omitempty"`
}

// Tool is one callable assistant action
type Tool interface {
	Spec() Spec
	Run(ctx context.Context, args map[string]any) (*Result, error)
}
