package projection

import "time"

// DefaultCalendarDays is how many upcoming school weekdays the
// exclusion calendar covers.
const DefaultCalendarDays = 30

// SchoolDay is one weekday on the exclusion calendar.
type SchoolDay struct {
	Date     time.Time `json:"date"`
	Excluded bool      `json:"excluded"`
}

// ExclusionCalendar lists the next horizon school weekdays (Mon-Fri)
// starting at start, with the first quarantineDays of them flagged as
// exclusion days, i.e. the days exposed unvaccinated students would be
// kept home if an outbreak began now.
func ExclusionCalendar(start time.Time, quarantineDays, horizon int) []SchoolDay {
	if horizon <= 0 {
		horizon = DefaultCalendarDays
	}

	days := make([]SchoolDay, 0, horizon)
	curr := start
	for len(days) < horizon {
		wd := curr.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days = append(days, SchoolDay{
				Date:     curr,
				Excluded: len(days) < quarantineDays,
			})
		}
		curr = curr.AddDate(0, 0, 1)
	}
	return days
}
