package types

import "fmt"

// DeadlineKind identifies a legally meaningful deadline derived from a
// dismissal date, plus the free-form reminder kind for user-set reminders.
type DeadlineKind string

const (
	// DeadlineKindWWApplication is the unemployment benefit (WW) application term
	DeadlineKindWWApplication DeadlineKind = "ww_application"
	// DeadlineKindUWVObjection is the objection term against a UWV decision
	DeadlineKindUWVObjection DeadlineKind = "uwv_objection"
	// DeadlineKindCourtPetition is the petition term at the kantonrechter
	DeadlineKindCourtPetition DeadlineKind = "court_petition"
	// DeadlineKindHumanRights is the complaint term at the College voor de
	// Rechten van de Mens
	DeadlineKindHumanRights DeadlineKind = "human_rights_complaint"
	// DeadlineKindCivilClaim is the general civil claim limitation term
	DeadlineKindCivilClaim DeadlineKind = "civil_claim"
	// DeadlineKindReminder is a user-defined reminder entry
	DeadlineKindReminder DeadlineKind = "reminder"
)

// AllDeadlineKinds returns all valid deadline kinds
func AllDeadlineKinds() []DeadlineKind {
	return []DeadlineKind{
		DeadlineKindWWApplication,
		DeadlineKindUWVObjection,
		DeadlineKindCourtPetition,
		DeadlineKindHumanRights,
		DeadlineKindCivilClaim,
		DeadlineKindReminder,
	}
}

// IsValid checks if the deadline kind is valid
func (k DeadlineKind) IsValid() bool {
	switch k {
	case DeadlineKindWWApplication,
		DeadlineKindUWVObjection,
		DeadlineKindCourtPetition,
		DeadlineKindHumanRights,
		DeadlineKindCivilClaim,
		DeadlineKindReminder:
		return true
	default:
		return false
	}
}

// String returns the string representation of the deadline kind
func (k DeadlineKind) String() string {
	return string(k)
}

// ParseDeadlineKind parses a string into a DeadlineKind
func ParseDeadlineKind(s string) (DeadlineKind, error) {
	k := DeadlineKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid deadline kind: %s", s)
	}
	return k, nil
}
