package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the wire format for calendar dates (no time component)
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date into midnight UTC. Anything that is
// not a valid calendar date is rejected; callers must not proceed to persist.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, goerr.Wrap(ErrInvalidDate, "date is empty")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrInvalidDate, "malformed date", goerr.V("date", s))
	}
	return t.UTC(), nil
}

// FormatDate renders a time as an ISO calendar date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
