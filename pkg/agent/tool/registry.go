package tool

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Registry is the static catalog of callable tools for one conversation
// turn. It dispatches a named call after validating the arguments against the
// declared schema. Adding a tool means adding it here plus its Tool
// implementation; no other component changes.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry builds a registry from the given tools. Tool order is preserved
// for the schema presented to the model. Duplicate names panic: the catalog
// is assembled from constants at startup, so a duplicate is a programming
// error.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{
		tools: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		name := t.Spec().Name
		if _, exists := r.tools[name]; exists {
			panic(fmt.Sprintf("duplicate tool name: %s", name))
		}
		r.order = append(r.order, name)
		r.tools[name] = t
	}
	return r
}

// Specs returns the tool specs in registration order
func (r *Registry) Specs() []Spec {
	specs := make([]Spec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name].Spec())
	}
	return specs
}

// Lookup returns the tool registered under name
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Execute dispatches one tool call: lookup, schema validation, then the
// tool's side effect. Each call is independent and order-insensitive
// relative to other calls in the same turn.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (*Result, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, goerr.Wrap(ErrUnknownTool, "tool not registered", goerr.V("tool", name))
	}

	if args == nil {
		args = map[string]any{}
	}

	if err := ValidateArgs(t.Spec(), args); err != nil {
		return nil, err
	}

	result, err := t.Run(ctx, args)
	if err != nil {
		return nil, goerr.Wrap(err, "tool execution failed", goerr.V("tool", name))
	}
	return result, nil
}
