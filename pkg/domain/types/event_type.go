package types

import "fmt"

// EventType classifies a timeline event
type EventType string

const (
	EventTypeDismissal      EventType = "dismissal"
	EventTypeConversation   EventType = "conversation"
	EventTypeWarning        EventType = "warning"
	EventTypeDiscrimination EventType = "discrimination"
	EventTypeEvidence       EventType = "evidence"
	EventTypeOther          EventType = "other"
)

// AllEventTypes returns all valid event types
func AllEventTypes() []EventType {
	return []EventType{
		EventTypeDismissal,
		EventTypeConversation,
		EventTypeWarning,
		EventTypeDiscrimination,
		EventTypeEvidence,
		EventTypeOther,
	}
}

// IsValid checks if the event type is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeDismissal,
		EventTypeConversation,
		EventTypeWarning,
		EventTypeDiscrimination,
		EventTypeEvidence,
		EventTypeOther:
		return true
	default:
		return false
	}
}

// Normalize returns the event type, mapping empty or unknown values to
// EventTypeOther. The assistant's tool arguments come from a language model,
// so an unexpected value must degrade rather than fail.
func (t EventType) Normalize() EventType {
	if t.IsValid() {
		return t
	}
	return EventTypeOther
}

// String returns the string representation of the event type
func (t EventType) String() string {
	return string(t)
}

// ParseEventType parses a string into an EventType
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid event type: %s", s)
	}
	return t, nil
}
