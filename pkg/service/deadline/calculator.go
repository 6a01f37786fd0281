// Package deadline computes the legal deadlines that follow from a dismissal
// date under Dutch employment law. It is a pure function of the anchor date:
// no storage, no network, no clock.
//
// Canonical offset table (fixed; deadlines are never interpolated from each
// other):
//
//	WW application          anchor + 1 week
//	UWV objection           anchor + 6 weeks
//	court petition          anchor + 2 months
//	human rights complaint  anchor + 6 months
//	civil claim limitation  anchor + 5 years
//
// The UWV objection term has circulated in two variants (6 weeks and 2
// months); 6 weeks is the statutory objection term and is canonical here,
// with 2 months reserved for the kantonrechter petition.
package deadline

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/model"
	"github.com/ontslagwijzer/ontslagwijzer/pkg/domain/types"
)

type offset struct {
	kind    types.DeadlineKind
	title   string
	urgency types.Urgency
	weeks   int
	months  int
	years   int
}

// Offsets are listed in ascending distance from the anchor; Calculate
// preserves this order for every anchor date.
var offsets = []offset{
	{
		kind:    types.DeadlineKindWWApplication,
		title:   "WW-uitkering aanvragen bij het UWV",
		urgency: types.UrgencyCritical,
		weeks:   1,
	},
	{
		kind:    types.DeadlineKindUWVObjection,
		title:   "Bezwaar maken tegen een UWV-beslissing",
		urgency: types.UrgencyCritical,
		weeks:   6,
	},
	{
		kind:    types.DeadlineKindCourtPetition,
		title:   "Verzoekschrift indienen bij de kantonrechter",
		urgency: types.UrgencyCritical,
		months:  2,
	},
	{
		kind:    types.DeadlineKindHumanRights,
		title:   "Klacht indienen bij het College voor de Rechten van de Mens",
		urgency: types.UrgencyImportant,
		months:  6,
	},
	{
		kind:    types.DeadlineKindCivilClaim,
		title:   "Civiele vordering (verjaringstermijn)",
		urgency: types.UrgencyNormal,
		years:   5,
	},
}

// Calculate returns the fixed, ordered set of deadlines for the given anchor
// date. The anchor must be a valid ISO calendar date.
func Calculate(anchorDate string) ([]*model.Deadline, error) {
	anchor, err := model.ParseDate(anchorDate)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid anchor date", goerr.V("anchor", anchorDate))
	}
	return CalculateFrom(anchor), nil
}

// CalculateFrom returns the deadline set for an already-parsed anchor date
func CalculateFrom(anchor time.Time) []*model.Deadline {
	deadlines := make([]*model.Deadline, 0, len(offsets))
	for _, o := range offsets {
		date := anchor.AddDate(0, 0, 7*o.weeks)
		if o.months != 0 {
			date = addMonths(date, o.months)
		}
		if o.years != 0 {
			date = addYears(date, o.years)
		}
		deadlines = append(deadlines, &model.Deadline{
			Kind:    o.kind,
			Title:   o.title,
			Date:    date,
			Urgency: o.urgency,
		})
	}
	return deadlines
}

// addMonths adds calendar months, clamping the day to the target month's
// length. time.AddDate would normalize Jan 31 + 1 month to Mar 2/3; a legal
// term ending "one month later" must land in the next month.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) + months
	year += (m - 1) / 12
	m = (m-1)%12 + 1
	if m <= 0 {
		m += 12
		year--
	}
	if last := daysInMonth(year, time.Month(m)); day > last {
		day = last
	}
	return time.Date(year, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// addYears adds calendar years with the same clamping (Feb 29 in a leap year
// maps to Feb 28 in a non-leap target year).
func addYears(t time.Time, years int) time.Time {
	year, month, day := t.Date()
	year += years
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
