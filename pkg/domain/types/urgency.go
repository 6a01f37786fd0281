package types

import "fmt"

// Urgency is the fixed urgency classification of a deadline kind. It is
// assigned per kind when the deadline is computed, not derived from the
// remaining time; proximity-based highlighting is a display concern.
type Urgency string

const (
	UrgencyCritical  Urgency = "critical"
	UrgencyImportant Urgency = "important"
	UrgencyNormal    Urgency = "normal"
)

// AllUrgencies returns all valid urgency levels
func AllUrgencies() []Urgency {
	return []Urgency{
		UrgencyCritical,
		UrgencyImportant,
		UrgencyNormal,
	}
}

// IsValid checks if the urgency is valid
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyCritical, UrgencyImportant, UrgencyNormal:
		return true
	default:
		return false
	}
}

// String returns the string representation of the urgency
func (u Urgency) String() string {
	return string(u)
}

// ParseUrgency parses a string into an Urgency
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}
