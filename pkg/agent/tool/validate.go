package tool

import "github.com/m-mizutani/goerr/v2"

// ValidateArgs checks the given arguments against the spec before dispatch.
// Required fields must be present and non-null, and every supplied value must
// match the declared primitive type. Tool arguments arrive as free-form JSON
// from the model, so numbers are float64 and integers are accepted only when
// they have no fractional part.
//
// Enum membership is not enforced here: for every enumerated parameter the
// owning tool defines a fallback (unknown page -> root route, unknown
// characteristic -> multiple grounds, unknown event type -> other).
func ValidateArgs(spec Spec, args map[string]any) error {
	for name, param := range spec.Parameters {
		value, ok := args[name]
		if !ok || value == nil {
			if param.Required {
				return goerr.Wrap(ErrInvalidArguments, "missing required argument",
					goerr.V("tool", spec.Name),
					goerr.V("argument", name),
				)
			}
			continue
		}

		if err := checkType(param.Type, value); err != nil {
			return goerr.Wrap(ErrInvalidArguments, "argument type mismatch",
				goerr.V("tool", spec.Name),
				goerr.V("argument", name),
				goerr.V("expected", string(param.Type)),
			)
		}

		if param.Required {
			if s, isStr := value.(string); isStr && s == "" {
				return goerr.Wrap(ErrInvalidArguments, "required argument is empty",
					goerr.V("tool", spec.Name),
					goerr.V("argument", name),
				)
			}
		}
	}

	return nil
}

func checkType(t ParameterType, value any) error {
	switch t {
	case TypeString:
		if _, ok := value.(string); !ok {
			return ErrInvalidArguments
		}
	case TypeInteger:
		switch v := value.(type) {
		case float64:
			if v != float64(int64(v)) {
				return ErrInvalidArguments
			}
		case int, int32, int64:
		default:
			return ErrInvalidArguments
		}
	case TypeNumber:
		switch value.(type) {
		case float64, int, int32, int64:
		default:
			return ErrInvalidArguments
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return ErrInvalidArguments
		}
	}
	return nil
}
